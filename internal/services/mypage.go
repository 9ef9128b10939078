package services

import (
	"time"

	"github.com/borantia/backend/internal/models"
	"gorm.io/gorm"
)

// MypageService builds the per-actor dashboard projections: a user's own
// applications and an organization's postings with their applicants.
type MypageService struct {
	db    *gorm.DB
	rooms *ChatRoomService
}

func NewMypageService(db *gorm.DB) *MypageService {
	return &MypageService{db: db, rooms: NewChatRoomService()}
}

type ApplicationItem struct {
	ID         uint         `json:"id"`
	IsApproved bool         `json:"is_approved"`
	CreatedAt  time.Time    `json:"created_at"`
	Posting    PostingBrief `json:"posting"`
}

type PostingBrief struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Location     string            `json:"location"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Organization OrganizationBrief `json:"organization"`
}

type MyApplicationsResponse struct {
	Waiting  []ApplicationItem `json:"waiting"`
	Approved []ApplicationItem `json:"approved"`
}

// UserApplications returns the user's applications split into waiting and
// approved buckets.
func (s *MypageService) UserApplications(userID uint) (*MyApplicationsResponse, error) {
	var entries []models.ApplyEntry
	err := s.db.
		Preload("Posting.Organization").
		Where("user_id = ?", userID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	resp := MyApplicationsResponse{
		Waiting:  []ApplicationItem{},
		Approved: []ApplicationItem{},
	}
	for _, entry := range entries {
		item := ApplicationItem{
			ID:         entry.ID,
			IsApproved: entry.IsApproved,
			CreatedAt:  entry.CreatedAt,
		}
		if entry.Posting != nil {
			item.Posting = PostingBrief{
				ID:        entry.Posting.ID,
				Title:     entry.Posting.Title,
				Location:  entry.Posting.Location,
				StartDate: entry.Posting.StartDate,
				EndDate:   entry.Posting.EndDate,
			}
			if entry.Posting.Organization != nil {
				item.Posting.Organization = OrganizationBrief{
					ID:   entry.Posting.Organization.ID,
					Name: entry.Posting.Organization.Name,
				}
			}
		}
		if entry.IsApproved {
			resp.Approved = append(resp.Approved, item)
		} else {
			resp.Waiting = append(resp.Waiting, item)
		}
	}

	return &resp, nil
}

type ApplicantBrief struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Gender   string     `json:"gender"`
	Birthday *time.Time `json:"birthday"`
	IsHasCar bool       `json:"is_has_car"`
}

type OrganizationEntryItem struct {
	ID         uint           `json:"id"`
	User       ApplicantBrief `json:"user"`
	IsApproved bool           `json:"is_approved"`
	ChatRoomID *uint          `json:"chat_room_id"`
}

type OrganizationPostingItem struct {
	ID           uint                    `json:"id"`
	Title        string                  `json:"title"`
	Location     string                  `json:"location"`
	StartDate    time.Time               `json:"start_date"`
	EndDate      time.Time               `json:"end_date"`
	Status       string                  `json:"status"`
	ApplyEntries []OrganizationEntryItem `json:"apply_entries"`
}

// OrganizationPostings returns the organization's postings with each
// applicant and, when provisioned, the chat room shared with them.
func (s *MypageService) OrganizationPostings(organizationID uint) ([]OrganizationPostingItem, error) {
	var postings []models.Posting
	err := s.db.
		Preload("ApplyEntries.User").
		Where("organization_id = ?", organizationID).
		Find(&postings).Error
	if err != nil {
		return nil, err
	}

	items := make([]OrganizationPostingItem, 0, len(postings))
	for _, p := range postings {
		item := OrganizationPostingItem{
			ID:           p.ID,
			Title:        p.Title,
			Location:     p.Location,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Status:       p.Status,
			ApplyEntries: []OrganizationEntryItem{},
		}
		for _, entry := range p.ApplyEntries {
			roomID, err := s.rooms.FindRoomID(s.db, entry.PostingID, entry.UserID)
			if err != nil {
				return nil, err
			}
			entryItem := OrganizationEntryItem{
				ID:         entry.ID,
				IsApproved: entry.IsApproved,
				ChatRoomID: roomID,
			}
			if entry.User != nil {
				entryItem.User = ApplicantBrief{
					ID:       entry.User.ID,
					Name:     entry.User.Name,
					Email:    entry.User.Email,
					Gender:   entry.User.Gender,
					Birthday: entry.User.Birthday,
					IsHasCar: entry.User.IsHasCar,
				}
			}
			item.ApplyEntries = append(item.ApplyEntries, entryItem)
		}
		items = append(items, item)
	}

	return items, nil
}
