package handlers

import (
	"github.com/borantia/backend/internal/services"
	"github.com/borantia/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type SystemLogHandler struct {
	service *services.SystemLogService
}

func NewSystemLogHandler(service *services.SystemLogService) *SystemLogHandler {
	return &SystemLogHandler{service: service}
}

// List handles GET /api/system-logs (organization only)
func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.List(&req)
	if err != nil {
		response.ServerError(c, "failed to list logs")
		return
	}

	response.Success(c, result)
}

// Modules handles GET /api/system-logs/modules (organization only)
func (h *SystemLogHandler) Modules(c *gin.Context) {
	modules, err := h.service.GetModules()
	if err != nil {
		response.ServerError(c, "failed to list log modules")
		return
	}
	response.Success(c, modules)
}
