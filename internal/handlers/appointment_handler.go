package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/models"
	usecase "github.com/louk-2005/AppointmentSite/internal/usecase/schedule"
)

type AppointmentHandler struct {
	repo            domain.Repository
	create          *usecase.CreateAppointment
	transition      *usecase.TransitionAppointment
	batchTransition *usecase.BatchTransition
}

func NewAppointmentHandler(
	repo domain.Repository,
	create *usecase.CreateAppointment,
	transition *usecase.TransitionAppointment,
	batchTransition *usecase.BatchTransition,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:            repo,
		create:          create,
		transition:      transition,
		batchTransition: batchTransition,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	TimeSlotID uint   `json:"time_slot_id" binding:"required"`
	StaffID    *uint  `json:"staff_id,omitempty"`
	ServiceID  *uint  `json:"service_id,omitempty"`
	Notes      string `json:"notes"`
}

type BatchTransitionRequest struct {
	FromStatus string `json:"from_status" binding:"required"`
	Action     string `json:"action" binding:"required"` // confirm | cancel | complete
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		Principal:  principal(c),
		TimeSlotID: req.TimeSlotID,
		StaffID:    req.StaffID,
		ServiceID:  req.ServiceID,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// List scopes the result to the acting role: customers see their own
// bookings, staff the ones assigned to them, managers those of their
// salons.
func (h *AppointmentHandler) List(c *gin.Context) {
	p := principal(c)

	filter := domain.AppointmentFilter{}
	switch p.Role {
	case models.RoleManager:
		filter.ManagerID = &p.UserID
	case models.RoleStaff:
		filter.StaffID = &p.UserID
	default:
		filter.CustomerID = &p.UserID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.Status(statusStr)
		filter.Status = &status
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	appointments, err := h.repo.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyTransition(c, h.transition.Confirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.transition.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, h.transition.Complete)
}

func (h *AppointmentHandler) applyTransition(
	c *gin.Context,
	fn func(ctx context.Context, p domain.Principal, id uint) (*models.Appointment, error),
) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_appointment_id", "appointment id must be numeric")
		return
	}

	ap, err := fn(c.Request.Context(), principal(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// Batch applies the same transition to every salon appointment in the
// given status; failures are counted, not fatal.
func (h *AppointmentHandler) Batch(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var req BatchTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.batchTransition.Execute(c.Request.Context(), usecase.BatchTransitionInput{
		Principal:  principal(c),
		SalonID:    salonID,
		FromStatus: domain.Status(req.FromStatus),
		Action:     usecase.TransitionAction(req.Action),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
