package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	usecase "github.com/louk-2005/AppointmentSite/internal/usecase/schedule"
)

// TimeSlotHandler exposes the slot lifecycle: generation over a date
// range, per-slot block administration and the public availability
// listing.
type TimeSlotHandler struct {
	repo          domain.Repository
	generateSlots *usecase.GenerateSlots
	blockSlot     *usecase.BlockSlot
	unblockSlot   *usecase.UnblockSlot
	listAvailable *usecase.ListAvailableSlots
}

func NewTimeSlotHandler(
	repo domain.Repository,
	generateSlots *usecase.GenerateSlots,
	blockSlot *usecase.BlockSlot,
	unblockSlot *usecase.UnblockSlot,
	listAvailable *usecase.ListAvailableSlots,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		repo:          repo,
		generateSlots: generateSlots,
		blockSlot:     blockSlot,
		unblockSlot:   unblockSlot,
		listAvailable: listAvailable,
	}
}

// --------- Requests ---------

type GenerateSlotsRequest struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

type BlockSlotRequest struct {
	Reason string `json:"reason"`
}

// --------- Handlers ---------

// Generate expands the salon's working hours into concrete slots for
// every date in [start_date, end_date].
func (h *TimeSlotHandler) Generate(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "end_date must be YYYY-MM-DD")
		return
	}

	count, err := h.generateSlots.Execute(c.Request.Context(), usecase.GenerateSlotsInput{
		Principal: principal(c),
		SalonID:   salonID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"generated": count})
}

// List returns the salon's slots for management, optionally filtered
// by date and active state.
func (h *TimeSlotHandler) List(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	p := principal(c)
	if _, err := h.repo.GetSalonForManager(c.Request.Context(), salonID, p.UserID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	filter := domain.TimeSlotFilter{SalonID: salonID}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}

	slots, err := h.repo.ListTimeSlots(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// Available is the public customer-facing listing of bookable slots
// for one date.
func (h *TimeSlotHandler) Available(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date query parameter is required")
		return
	}
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.listAvailable.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// Get returns one slot with its block log.
func (h *TimeSlotHandler) Get(c *gin.Context) {
	slotID, ok := paramUint(c, "slotID")
	if !ok {
		httperr.BadRequest(c, "invalid_slot_id", "slot id must be numeric")
		return
	}

	slot, err := h.repo.GetTimeSlot(c.Request.Context(), slotID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	p := principal(c)
	if _, err := h.repo.GetSalonForManager(c.Request.Context(), slot.SalonID, p.UserID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *TimeSlotHandler) Block(c *gin.Context) {
	slotID, ok := paramUint(c, "slotID")
	if !ok {
		httperr.BadRequest(c, "invalid_slot_id", "slot id must be numeric")
		return
	}

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := h.blockSlot.Execute(c.Request.Context(), principal(c), slotID, req.Reason); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "blocked"})
}

func (h *TimeSlotHandler) Unblock(c *gin.Context) {
	slotID, ok := paramUint(c, "slotID")
	if !ok {
		httperr.BadRequest(c, "invalid_slot_id", "slot id must be numeric")
		return
	}

	if err := h.unblockSlot.Execute(c.Request.Context(), principal(c), slotID); err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unblocked"})
}
