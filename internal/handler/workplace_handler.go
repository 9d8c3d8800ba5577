package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/officebook/service-booking/internal/application"
	"github.com/officebook/service-booking/internal/response"
)

// WorkplaceHandler serves the read-only workplace catalog.
type WorkplaceHandler struct {
	service *application.WorkplaceService
}

// NewWorkplaceHandler creates a new WorkplaceHandler.
func NewWorkplaceHandler(service *application.WorkplaceService) *WorkplaceHandler {
	return &WorkplaceHandler{service: service}
}

// RegisterRoutes registers the workplace routes on the given router group.
func (h *WorkplaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/workplaces", h.GetWorkplaces)
}

// GetWorkplaces handles GET /api/workplaces?branch=.
func (h *WorkplaceHandler) GetWorkplaces(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		response.BadRequest(c, "branch is required")
		return
	}
	response.Success(c, h.service.GetWorkplaces(branch))
}
