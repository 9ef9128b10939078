package handlers

import (
	"errors"

	"github.com/borantia/backend/internal/middleware"
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ApplyEntryHandler struct {
	service *services.ApplyEntryService
}

func NewApplyEntryHandler(service *services.ApplyEntryService) *ApplyEntryHandler {
	return &ApplyEntryHandler{service: service}
}

// Submit handles POST /api/apply-entries (user only)
func (h *ApplyEntryHandler) Submit(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Submit(middleware.GetActorID(c), req.PostingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(c, "posting not found")
		case errors.Is(err, services.ErrDuplicateApplication):
			response.BadRequest(c, "you have already applied to this posting")
		default:
			response.ServerError(c, "failed to submit application")
		}
		return
	}

	response.Created(c, result)
}

// Cancel handles DELETE /api/apply-entries/:id (owning user only)
func (h *ApplyEntryHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	if err := h.service.Cancel(middleware.GetActorID(c), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.ServerError(c, "failed to cancel application")
		return
	}

	response.Message(c, "application cancelled")
}

// Approve handles POST /api/apply-entries/:id/approve (organization only)
func (h *ApplyEntryHandler) Approve(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	result, err := h.service.Approve(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.ServerError(c, "failed to approve application")
		return
	}

	if result.AlreadyApproved {
		response.Message(c, "application is already approved")
		return
	}
	response.Message(c, "application approved")
}

// Reject handles POST /api/apply-entries/:id/reject (organization only)
func (h *ApplyEntryHandler) Reject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid entry id")
		return
	}

	if err := h.service.Reject(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.ServerError(c, "failed to reject application")
		return
	}

	response.Message(c, "application rejected")
}
