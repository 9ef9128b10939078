package handlers

import (
	"github.com/borantia/backend/internal/middleware"
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type MypageHandler struct {
	service *services.MypageService
}

func NewMypageHandler(service *services.MypageService) *MypageHandler {
	return &MypageHandler{service: service}
}

// MyApplications handles GET /api/users/my-applications (user only)
func (h *MypageHandler) MyApplications(c *gin.Context) {
	result, err := h.service.UserApplications(middleware.GetActorID(c))
	if err != nil {
		response.ServerError(c, "failed to list applications")
		return
	}
	response.Success(c, result)
}

// MyPostings handles GET /api/organizations/my-borantia-contents (organization only)
func (h *MypageHandler) MyPostings(c *gin.Context) {
	items, err := h.service.OrganizationPostings(middleware.GetActorID(c))
	if err != nil {
		response.ServerError(c, "failed to list postings")
		return
	}
	response.Success(c, items)
}
