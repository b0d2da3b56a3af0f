package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	usecase "github.com/louk-2005/AppointmentSite/internal/usecase/schedule"
)

type BlockedTimeHandler struct {
	repo         domain.Repository
	blockRange   *usecase.BlockRange
	unblockRange *usecase.UnblockRange
}

func NewBlockedTimeHandler(
	repo domain.Repository,
	blockRange *usecase.BlockRange,
	unblockRange *usecase.UnblockRange,
) *BlockedTimeHandler {
	return &BlockedTimeHandler{
		repo:         repo,
		blockRange:   blockRange,
		unblockRange: unblockRange,
	}
}

// --------- Requests ---------

type BlockRangeRequest struct {
	StartDatetime string `json:"start_datetime" binding:"required"` // YYYY-MM-DD HH:MM
	EndDatetime   string `json:"end_datetime" binding:"required"`   // YYYY-MM-DD HH:MM
	Reason        string `json:"reason"`
}

type UnblockRangeRequest struct {
	StartDatetime string `json:"start_datetime" binding:"required"`
	EndDatetime   string `json:"end_datetime" binding:"required"`
}

// --------- Handlers ---------

func (h *BlockedTimeHandler) List(c *gin.Context) {
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

	blocks, err := h.repo.ListBlockedTimes(c.Request.Context(), salonID)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, blocks)
}

// BlockRange records a blocked datetime range and deactivates the
// matching generated slots of the range's start date.
func (h *BlockedTimeHandler) BlockRange(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var req BlockRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(req.StartDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "start_datetime must be YYYY-MM-DD HH:MM")
		return
	}
	end, err := parseDateTime(req.EndDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "end_datetime must be YYYY-MM-DD HH:MM")
		return
	}

	affected, err := h.blockRange.Execute(c.Request.Context(), usecase.BlockRangeInput{
		Principal:     principal(c),
		SalonID:       salonID,
		StartDatetime: start,
		EndDatetime:   end,
		Reason:        req.Reason,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked_slots": affected})
}

// UnblockRange deletes the ranges matching the exact start/end pair and
// reactivates the covered slots. Unblocking a range that was never
// blocked still reactivates matching slots.
func (h *BlockedTimeHandler) UnblockRange(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var req UnblockRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(req.StartDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "start_datetime must be YYYY-MM-DD HH:MM")
		return
	}
	end, err := parseDateTime(req.EndDatetime)
	if err != nil {
		httperr.BadRequest(c, "invalid_datetime", "end_datetime must be YYYY-MM-DD HH:MM")
		return
	}

	affected, err := h.unblockRange.Execute(c.Request.Context(), usecase.UnblockRangeInput{
		Principal:     principal(c),
		SalonID:       salonID,
		StartDatetime: start,
		EndDatetime:   end,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unblocked_slots": affected})
}
