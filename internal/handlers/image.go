package handlers

import (
	"errors"

	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	service *services.ImageService
}

func NewImageHandler(service *services.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// Upload handles POST /api/images (multipart field "image")
func (h *ImageHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	stored, err := h.service.Store(fh)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImage) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "failed to store image")
		return
	}

	response.Created(c, stored)
}
