package services

import (
	"errors"
	"time"

	"github.com/borantia/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileService reads and updates the authenticated actor's own record.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type UpdateUserProfileRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Address  string `json:"address"`
	IsHasCar *bool  `json:"is_has_car"`
	Note     string `json:"note"`
}

type UpdateOrganizationProfileRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

func (s *ProfileService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("ProfileImage").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *ProfileService) GetOrganization(organizationID uint) (*models.Organization, error) {
	var org models.Organization
	if err := s.db.First(&org, organizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (s *ProfileService) UpdateUser(userID uint, req *UpdateUserProfileRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"gender":  req.Gender,
		"address": req.Address,
		"note":    req.Note,
	}
	if req.IsHasCar != nil {
		updates["is_has_car"] = *req.IsHasCar
	}
	if req.Birthday != "" {
		if birthday, err := time.Parse(dateLayout, req.Birthday); err == nil {
			updates["birthday"] = birthday
		}
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *ProfileService) UpdateOrganization(organizationID uint, req *UpdateOrganizationProfileRequest) error {
	var org models.Organization
	if err := s.db.First(&org, organizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"address": req.Address,
		"note":    req.Note,
	}
	if err := s.db.Model(&org).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
