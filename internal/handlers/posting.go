package handlers

import (
	"errors"
	"strconv"

	"github.com/borantia/backend/internal/middleware"
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	service *services.PostingService
}

func NewPostingHandler(service *services.PostingService) *PostingHandler {
	return &PostingHandler{service: service}
}

// List handles GET /api/borantia-contents. Public; only recruiting postings.
func (h *PostingHandler) List(c *gin.Context) {
	items, err := h.service.List()
	if err != nil {
		response.ServerError(c, "failed to list postings")
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/borantia-contents/:id
func (h *PostingHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid posting id")
		return
	}

	detail, err := h.service.Get(id, middleware.GetActorRole(c), middleware.GetActorID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "posting not found")
			return
		}
		response.ServerError(c, "failed to get posting")
		return
	}

	response.Success(c, detail)
}

// Create handles POST /api/borantia-contents (organization only)
func (h *PostingHandler) Create(c *gin.Context) {
	var req services.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posting, err := h.service.Create(middleware.GetActorID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			response.BadRequest(c, "end date must not be before start date")
			return
		}
		response.ServerError(c, "failed to create posting")
		return
	}

	response.Created(c, posting)
}

// Update handles PUT /api/borantia-contents/:id (owning organization only)
func (h *PostingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid posting id")
		return
	}

	var req services.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Update(middleware.GetActorID(c), id, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(c, "posting not found")
		case errors.Is(err, services.ErrInvalidDateRange):
			response.BadRequest(c, "end date must not be before start date")
		default:
			response.ServerError(c, "failed to update posting")
		}
		return
	}

	response.Message(c, "posting updated")
}

// Delete handles DELETE /api/borantia-contents/:id (owning organization only)
func (h *PostingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid posting id")
		return
	}

	if err := h.service.Delete(middleware.GetActorID(c), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(c, "posting not found")
			return
		}
		response.ServerError(c, "failed to delete posting")
		return
	}

	response.Message(c, "posting deleted")
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
