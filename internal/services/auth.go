package services

import (
	"errors"
	"time"

	"github.com/borantia/backend/internal/config"
	"github.com/borantia/backend/internal/models"
	"github.com/borantia/backend/internal/utils"
	"gorm.io/gorm"
)

// AuthService handles registration and login for both actor kinds. Users and
// organizations live in separate tables; the login role field picks the one
// to authenticate against.
type AuthService struct {
	db  *gorm.DB
	cfg *config.JWTConfig
}

func NewAuthService(db *gorm.DB, cfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Address  string `json:"address" binding:"required"`
	IsHasCar *bool  `json:"is_has_car"`
	Note     string `json:"note"`
}

type RegisterOrganizationRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"required,max=255"`
	Note     string `json:"note" binding:"omitempty,max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=user organization"`
}

// AuthResult carries the issued token and the actor's role.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

// RegisterUser creates a volunteer user account and issues a token.
func (s *AuthService) RegisterUser(req *RegisterUserRequest) (*AuthResult, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Phone:    req.Phone,
		Gender:   req.Gender,
		Address:  req.Address,
		Note:     req.Note,
		Role:     models.RoleUser,
	}
	if req.IsHasCar != nil {
		user.IsHasCar = *req.IsHasCar
	}
	if req.Birthday != "" {
		if birthday, err := time.Parse(dateLayout, req.Birthday); err == nil {
			user.Birthday = &birthday
		}
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueToken(user.ID, user.Email, models.RoleUser)
}

// RegisterOrganization creates an organization account and issues a token.
func (s *AuthService) RegisterOrganization(req *RegisterOrganizationRequest) (*AuthResult, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	org := models.Organization{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Phone:    req.Phone,
		Address:  req.Address,
		Note:     req.Note,
		Role:     models.RoleOrganization,
	}
	if err := s.db.Create(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueToken(org.ID, org.Email, models.RoleOrganization)
}

// Login authenticates against the table matching req.Role. The failure
// message never says whether the email or the password was wrong.
func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	var (
		id    uint
		email string
		hash  string
	)

	switch req.Role {
	case models.RoleUser:
		var user models.User
		if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		id, email, hash = user.ID, user.Email, user.Password
	case models.RoleOrganization:
		var org models.Organization
		if err := s.db.Where("email = ?", req.Email).First(&org).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		id, email, hash = org.ID, org.Email, org.Password
	default:
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(hash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(id, email, req.Role)
}

func (s *AuthService) issueToken(id uint, email, role string) (*AuthResult, error) {
	token, err := utils.GenerateToken(id, email, role, s.cfg.ExpireHour)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, Role: role}, nil
}
