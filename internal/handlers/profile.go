package handlers

import (
	"errors"

	"github.com/borantia/backend/internal/middleware"
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetUser handles GET /api/users/me (user only)
func (h *ProfileHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(middleware.GetActorID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.ServerError(c, "failed to get profile")
		return
	}
	response.Success(c, user)
}

// UpdateUser handles PUT /api/users/me (user only)
func (h *ProfileHandler) UpdateUser(c *gin.Context) {
	var req services.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateUser(middleware.GetActorID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, services.ErrEmailTaken):
			response.BadRequest(c, "email is already registered")
		default:
			response.ServerError(c, "failed to update profile")
		}
		return
	}

	response.Message(c, "profile updated")
}

// GetOrganization handles GET /api/organizations/me (organization only)
func (h *ProfileHandler) GetOrganization(c *gin.Context) {
	org, err := h.service.GetOrganization(middleware.GetActorID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "organization not found")
			return
		}
		response.ServerError(c, "failed to get profile")
		return
	}
	response.Success(c, org)
}

// UpdateOrganization handles PUT /api/organizations/me (organization only)
func (h *ProfileHandler) UpdateOrganization(c *gin.Context) {
	var req services.UpdateOrganizationProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateOrganization(middleware.GetActorID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(c, "organization not found")
		case errors.Is(err, services.ErrEmailTaken):
			response.BadRequest(c, "email is already registered")
		default:
			response.ServerError(c, "failed to update profile")
		}
		return
	}

	response.Message(c, "profile updated")
}
