// Package handler wires the application services to the HTTP surface.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/officebook/service-booking/internal/application"
	"github.com/officebook/service-booking/internal/auth"
	"github.com/officebook/service-booking/internal/middleware"
	"github.com/officebook/service-booking/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	bookings := r.Group("/api/bookings")
	bookings.Use(authMW)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListMyBookings)
		bookings.GET("/by-place", h.ListBookingsByPlace)
		bookings.GET("/check-availability", h.CheckAvailability)
		bookings.GET("/:id", h.GetBooking)
		bookings.DELETE("/:id", h.CancelBooking)
	}
}

// CreateBooking handles POST /api/bookings. The owner is always the
// authenticated caller; a userId in the body is ignored.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.UserID = username

	record, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"id":     record.ID,
		"status": record.Status,
	})
}

// ListMyBookings handles GET /api/bookings, returning the caller's
// bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	records, err := h.service.ListBookingsForUser(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

// ListBookingsByPlace handles GET /api/bookings/by-place?workplaceId=,
// the occupied-slots view for one workplace.
func (h *BookingHandler) ListBookingsByPlace(c *gin.Context) {
	workplaceID := c.Query("workplaceId")
	if workplaceID == "" {
		response.BadRequest(c, "workplaceId is required")
		return
	}

	records, err := h.service.ListBookingsForWorkplace(c.Request.Context(), workplaceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

// CheckAvailability handles GET /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	workplaceID := c.Query("workplaceId")
	date := c.Query("date")
	startTime := c.Query("startTime")
	endTime := c.Query("endTime")
	if workplaceID == "" || date == "" || startTime == "" || endTime == "" {
		response.BadRequest(c, "workplaceId, date, startTime and endTime are required")
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), workplaceID, date, startTime, endTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"available":   available,
		"workplaceId": workplaceID,
		"date":        date,
	})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

// CancelBooking handles DELETE /api/bookings/:id. A missing booking is a
// normal outcome reported as cancelled=false.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"cancelled": removed})
}
