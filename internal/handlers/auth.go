package handlers

import (
	"errors"

	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterUser handles POST /api/register/user
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RegisterUser(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.BadRequest(c, "email is already registered")
			return
		}
		response.ServerError(c, "failed to register user")
		return
	}

	response.Created(c, result)
}

// RegisterOrganization handles POST /api/register/organization
func (h *AuthHandler) RegisterOrganization(c *gin.Context) {
	var req services.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RegisterOrganization(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.BadRequest(c, "email is already registered")
			return
		}
		response.ServerError(c, "failed to register organization")
		return
	}

	response.Created(c, result)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		response.ServerError(c, "failed to login")
		return
	}

	response.Success(c, result)
}

// Logout handles POST /api/logout. Tokens are stateless, so this only gives
// the frontend a clean endpoint to call before dropping its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, "logged out")
}
