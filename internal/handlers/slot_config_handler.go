package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

type SlotConfigHandler struct {
	db *gorm.DB
}

func NewSlotConfigHandler(db *gorm.DB) *SlotConfigHandler {
	return &SlotConfigHandler{db: db}
}

type UpsertSlotConfigRequest struct {
	IntervalMinutes int `json:"interval_minutes" binding:"required,min=1"`
	// Zero capacity is legal: slots exist but accept no bookings.
	CapacityPerSlot int `json:"capacity_per_slot" binding:"min=0"`
}

func (h *SlotConfigHandler) Get(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var cfg models.SlotConfig
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		First(&cfg).Error; err != nil {
		httperr.NotFound(c, "slot_config_not_found", "slot config not found")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// Upsert sets the salon's slot policy. Changing it only affects future
// generation runs; already generated slots keep their capacity.
func (h *SlotConfigHandler) Upsert(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req UpsertSlotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var cfg models.SlotConfig
	err := h.db.Where("salon_id = ?", salon.ID).First(&cfg).Error

	switch {
	case err == nil:
		cfg.IntervalMinutes = req.IntervalMinutes
		cfg.CapacityPerSlot = req.CapacityPerSlot
		if err := h.db.Save(&cfg).Error; err != nil {
			httperr.Internal(c, "failed_to_save_slot_config", "could not save slot config")
			return
		}
		c.JSON(http.StatusOK, cfg)
	default:
		cfg = models.SlotConfig{
			SalonID:         salon.ID,
			IntervalMinutes: req.IntervalMinutes,
			CapacityPerSlot: req.CapacityPerSlot,
		}
		if err := h.db.Create(&cfg).Error; err != nil {
			httperr.Internal(c, "failed_to_save_slot_config", "could not save slot config")
			return
		}
		httpresp.Created(c, cfg)
	}
}
