package services

import (
	"errors"
	"time"

	"github.com/borantia/backend/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type PostingService struct {
	db *gorm.DB
}

func NewPostingService(db *gorm.DB) *PostingService {
	return &PostingService{db: db}
}

// PostingRequest is the body for both posting create and update.
type PostingRequest struct {
	Title            string   `json:"title" binding:"required,max=255"`
	Location         string   `json:"location" binding:"required"`
	StartDate        string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate          string   `json:"end_date" binding:"required,datetime=2006-01-02"`
	RecruitingNumber int      `json:"recruiting_number" binding:"required,min=1"`
	Phone            string   `json:"phone" binding:"required,max=20"`
	Accommodation    *bool    `json:"accommodation" binding:"required"`
	Car              string   `json:"car" binding:"required,oneof=must preferred none"`
	Note             string   `json:"note"`
	ImageID          *uint    `json:"image_id"`
	Tools            []string `json:"tools" binding:"omitempty,dive,max=255"`
}

func (r *PostingRequest) dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		err = ErrInvalidDateRange
	}
	return
}

// Create stores a new posting for the organization. Status and the
// applicants counter are forced regardless of input: every posting starts
// recruiting with zero applicants. Tool names become child rows in the same
// transaction.
func (s *PostingService) Create(organizationID uint, req *PostingRequest) (*models.Posting, error) {
	start, end, err := req.dates()
	if err != nil {
		return nil, err
	}

	posting := models.Posting{
		OrganizationID:   organizationID,
		Title:            req.Title,
		Location:         req.Location,
		StartDate:        start,
		EndDate:          end,
		RecruitingNumber: req.RecruitingNumber,
		ApplicantsNumber: 0,
		Phone:            req.Phone,
		Accommodation:    *req.Accommodation,
		Car:              req.Car,
		Note:             req.Note,
		Status:           models.PostingStatusRecruiting,
		ImageID:          req.ImageID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&posting).Error; err != nil {
			return err
		}
		return createTools(tx, posting.ID, req.Tools)
	})
	if err != nil {
		return nil, err
	}

	return &posting, nil
}

// Update edits a posting owned by organizationID. The tool list is replaced
// wholesale: old rows deleted, new names inserted, in one transaction with
// the field update. ErrNotFound covers both a missing posting and one owned
// by another organization.
func (s *PostingService) Update(organizationID, postingID uint, req *PostingRequest) error {
	start, end, err := req.dates()
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var posting models.Posting
		err := tx.Where("id = ? AND organization_id = ?", postingID, organizationID).
			First(&posting).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"title":             req.Title,
			"location":          req.Location,
			"start_date":        start,
			"end_date":          end,
			"recruiting_number": req.RecruitingNumber,
			"phone":             req.Phone,
			"accommodation":     *req.Accommodation,
			"car":               req.Car,
			"note":              req.Note,
			"image_id":          req.ImageID,
		}
		if err := tx.Model(&posting).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("posting_id = ?", posting.ID).Delete(&models.Tool{}).Error; err != nil {
			return err
		}
		return createTools(tx, posting.ID, req.Tools)
	})
}

func createTools(tx *gorm.DB, postingID uint, names []string) error {
	for _, name := range names {
		tool := models.Tool{PostingID: postingID, Name: name}
		if err := tx.Create(&tool).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete hard-deletes a posting owned by organizationID. Child apply entries,
// tools and chat rooms go with it via FK cascade.
func (s *PostingService) Delete(organizationID, postingID uint) error {
	result := s.db.Where("id = ? AND organization_id = ?", postingID, organizationID).
		Delete(&models.Posting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type OrganizationBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PostingSummary struct {
	ID               uint              `json:"id"`
	Title            string            `json:"title"`
	Location         string            `json:"location"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	Status           string            `json:"status"`
	RecruitingNumber int               `json:"recruiting_number"`
	ApplicantsNumber int               `json:"applicants_number"`
	Accommodation    bool              `json:"accommodation"`
	Car              string            `json:"car"`
	ImageURL         string            `json:"image_url"`
	Organization     OrganizationBrief `json:"organization"`
}

// List returns recruiting postings ordered by start date ascending.
func (s *PostingService) List() ([]PostingSummary, error) {
	var postings []models.Posting
	err := s.db.
		Preload("Organization").
		Preload("Image").
		Where("status = ?", models.PostingStatusRecruiting).
		Order("start_date").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}

	items := make([]PostingSummary, 0, len(postings))
	for _, p := range postings {
		item := PostingSummary{
			ID:               p.ID,
			Title:            p.Title,
			Location:         p.Location,
			StartDate:        p.StartDate,
			EndDate:          p.EndDate,
			Status:           p.Status,
			RecruitingNumber: p.RecruitingNumber,
			ApplicantsNumber: p.ApplicantsNumber,
			Accommodation:    p.Accommodation,
			Car:              p.Car,
		}
		if p.Image != nil {
			item.ImageURL = p.Image.FilePath
		}
		if p.Organization != nil {
			item.Organization = OrganizationBrief{ID: p.Organization.ID, Name: p.Organization.Name}
		}
		items = append(items, item)
	}
	return items, nil
}

type PostingDetail struct {
	models.Posting
	ApplyEntry *EntryBrief `json:"apply_entry"`
}

type EntryBrief struct {
	EntryID    uint `json:"entry_id"`
	IsApproved bool `json:"is_approved"`
}

// Get returns one posting with organization, tools and image. When the viewer
// is a volunteer user, their own apply entry (if any) is attached so the
// frontend can render apply/cancel state.
func (s *PostingService) Get(postingID uint, viewerRole string, viewerID uint) (*PostingDetail, error) {
	var posting models.Posting
	err := s.db.
		Preload("Organization").
		Preload("Tools").
		Preload("Image").
		First(&posting, postingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := PostingDetail{Posting: posting}

	if viewerRole == models.RoleUser && viewerID != 0 {
		var entry models.ApplyEntry
		err := s.db.Where("posting_id = ? AND user_id = ?", postingID, viewerID).
			First(&entry).Error
		if err == nil {
			detail.ApplyEntry = &EntryBrief{EntryID: entry.ID, IsApproved: entry.IsApproved}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return &detail, nil
}

// CloseExpired moves recruiting postings whose end date has passed to closed.
// Called by the daily scheduler; returns the number of postings closed.
func (s *PostingService) CloseExpired(now time.Time) (int64, error) {
	today := now.Truncate(24 * time.Hour)
	result := s.db.Model(&models.Posting{}).
		Where("status = ? AND end_date < ?", models.PostingStatusRecruiting, today).
		Update("status", models.PostingStatusClosed)
	return result.RowsAffected, result.Error
}
