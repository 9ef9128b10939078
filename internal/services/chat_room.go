package services

import (
	"errors"

	"github.com/borantia/backend/internal/models"
	"gorm.io/gorm"
)

// ChatRoomService provisions the shared room between an applicant and the
// organization behind a posting.
type ChatRoomService struct{}

func NewChatRoomService() *ChatRoomService {
	return &ChatRoomService{}
}

// EnsureRoom returns the chat room for (postingID, applicantID), creating it
// with both members when absent. Idempotent for repeated calls with the same
// pair. Runs on the caller's transaction so a failed apply rolls the room
// back as well.
func (s *ChatRoomService) EnsureRoom(tx *gorm.DB, postingID, applicantID, organizationID uint) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := tx.
		Joins("JOIN chat_room_users ON chat_room_users.chat_room_id = chat_rooms.id").
		Where("chat_rooms.posting_id = ? AND chat_room_users.user_id = ?", postingID, applicantID).
		First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room = models.ChatRoom{PostingID: postingID}
	if err := tx.Create(&room).Error; err != nil {
		return nil, err
	}

	members := []models.ChatRoomUser{
		{ChatRoomID: room.ID, UserID: applicantID},
	}
	if organizationID != 0 {
		members = append(members, models.ChatRoomUser{ChatRoomID: room.ID, UserID: organizationID})
	}
	if err := tx.Create(&members).Error; err != nil {
		return nil, err
	}

	return &room, nil
}

// FindRoomID returns the id of the room for (postingID, applicantID), or nil
// when no room exists yet.
func (s *ChatRoomService) FindRoomID(db *gorm.DB, postingID, applicantID uint) (*uint, error) {
	var room models.ChatRoom
	err := db.
		Joins("JOIN chat_room_users ON chat_room_users.chat_room_id = chat_rooms.id").
		Where("chat_rooms.posting_id = ? AND chat_room_users.user_id = ?", postingID, applicantID).
		First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room.ID, nil
}
