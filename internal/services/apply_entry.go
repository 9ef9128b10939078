package services

import (
	"errors"

	"github.com/borantia/backend/internal/models"
	"gorm.io/gorm"
)

// CounterPolicy controls how a posting's applicants counter reacts when an
// approved entry is rejected afterwards.
type CounterPolicy int

const (
	// CounterNeverDecrement keeps the counter at its high-water mark: an entry
	// that was approved once keeps counting even after rejection. Changing
	// this behavior means adding a decrement policy here, not editing Reject.
	CounterNeverDecrement CounterPolicy = iota
)

// ApplyEntryService implements the application lifecycle: submit, cancel,
// approve, reject.
type ApplyEntryService struct {
	db            *gorm.DB
	rooms         *ChatRoomService
	counterPolicy CounterPolicy
}

func NewApplyEntryService(db *gorm.DB) *ApplyEntryService {
	return &ApplyEntryService{
		db:            db,
		rooms:         NewChatRoomService(),
		counterPolicy: CounterNeverDecrement,
	}
}

type SubmitRequest struct {
	PostingID uint `json:"posting_id" binding:"required"`
}

type SubmitResult struct {
	EntryID    uint `json:"entry_id"`
	ChatRoomID uint `json:"chat_room_id"`
}

// Submit creates an apply entry for (userID, postingID) and provisions the
// shared chat room. The duplicate check, the insert and the room provisioning
// run in one transaction; any failure rolls all of it back.
func (s *ApplyEntryService) Submit(userID, postingID uint) (*SubmitResult, error) {
	var posting models.Posting
	if err := s.db.First(&posting, postingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var result SubmitResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ApplyEntry{}).
			Where("user_id = ? AND posting_id = ?", userID, postingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateApplication
		}

		entry := models.ApplyEntry{
			UserID:     userID,
			PostingID:  postingID,
			IsApproved: false,
		}
		if err := tx.Create(&entry).Error; err != nil {
			// The existence check above is only a fast path; the composite
			// unique index is what holds under concurrent submits.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return err
		}

		room, err := s.rooms.EnsureRoom(tx, postingID, userID, posting.OrganizationID)
		if err != nil {
			return err
		}

		result.EntryID = entry.ID
		result.ChatRoomID = room.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Cancel hard-deletes an entry owned by userID. Chat rooms and posting
// counters are untouched. ErrNotFound covers both a missing entry and one
// owned by a different user.
func (s *ApplyEntryService) Cancel(userID, entryID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.ApplyEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type ApproveResult struct {
	AlreadyApproved bool
}

// Approve flips the entry's flag to true and increments the posting's
// applicants counter by exactly one. A second approve is a no-op reporting
// AlreadyApproved, so the counter cannot be bumped twice for one entry.
func (s *ApplyEntryService) Approve(entryID uint) (*ApproveResult, error) {
	var result ApproveResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.ApplyEntry
		if err := tx.First(&entry, entryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if entry.IsApproved {
			result.AlreadyApproved = true
			return nil
		}

		if err := tx.Model(&entry).Update("is_approved", true).Error; err != nil {
			return err
		}

		// Atomic increment at the storage layer; no read-modify-write.
		return tx.Model(&models.Posting{}).
			Where("id = ?", entry.PostingID).
			UpdateColumn("applicants_number", gorm.Expr("applicants_number + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reject unconditionally sets the flag to false. Idempotent; rejecting an
// already-rejected entry succeeds. The posting counter is governed by the
// service's CounterPolicy.
func (s *ApplyEntryService) Reject(entryID uint) error {
	var entry models.ApplyEntry
	if err := s.db.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.db.Model(&entry).Update("is_approved", false).Error; err != nil {
		return err
	}

	switch s.counterPolicy {
	case CounterNeverDecrement:
		// applicants_number stays where approval left it
	}

	return nil
}
