package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/application/service"
	"github.com/quartzsoft/tempus-api/internal/domain/enum"
	"github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/request"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles viewing appointment HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles appointment booking
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.BadRequest(c, "scheduled_at must be an RFC3339 timestamp")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		StoreID:     req.StoreID,
		CustomerID:  req.CustomerID,
		ProductID:   req.ProductID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		CreatedBy:   *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appointment)
}

// Get handles retrieving a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// Transition handles completing or cancelling an appointment
func (h *AppointmentHandler) Transition(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.TransitionAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	appointment, err := h.appointmentService.TransitionStatus(c.Request.Context(), id, enum.AppointmentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment updated successfully", appointment)
}

// Reschedule handles moving an appointment to a new time
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.BadRequest(c, "scheduled_at must be an RFC3339 timestamp")
		return
	}

	appointment, err := h.appointmentService.RescheduleAppointment(c.Request.Context(), id, scheduledAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment rescheduled successfully", appointment)
}

// List handles listing appointments with filters
func (h *AppointmentHandler) List(c *gin.Context) {
	params := &repository.AppointmentFilterParams{
		Pagination: PaginationFromQuery(c),
		StoreID:    ParseUUIDQuery(c, "store_id"),
		CustomerID: ParseUUIDQuery(c, "customer_id"),
	}

	if raw := c.Query("status"); raw != "" {
		status := enum.AppointmentStatus(raw)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid appointment status")
			return
		}
		params.Status = &status
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			params.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			params.To = &to
		}
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}
