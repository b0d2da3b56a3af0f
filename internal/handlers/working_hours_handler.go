package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/middleware"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type UpsertWorkingHoursRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// ownedSalon loads the salon identified by the :id route param and
// verifies the acting manager owns it.
func ownedSalon(c *gin.Context, db *gorm.DB) (*models.Salon, bool) {
	managerIDVal, _ := c.Get(middleware.ContextUserID)
	managerID := managerIDVal.(uint)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return nil, false
	}

	var salon models.Salon
	if err := db.
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return nil, false
	}
	return &salon, true
}

func (h *WorkingHoursHandler) List(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "could not list working hours")
		return
	}

	httpresp.List(c, hours)
}

// Upsert creates or replaces the working hours for one weekday. A salon
// has at most one row per weekday, so posting the same day twice is an
// update, not a duplicate.
func (h *WorkingHoursHandler) Upsert(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req UpsertWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if err := domain.ValidateSlotWindow(req.StartTime, req.EndTime); err != nil {
		httperr.WriteError(c, err)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	var hours models.WorkingHours
	err := h.db.
		Where("salon_id = ? AND day_of_week = ?", salon.ID, req.DayOfWeek).
		First(&hours).Error

	switch {
	case err == nil:
		hours.StartTime = req.StartTime
		hours.EndTime = req.EndTime
		hours.IsActive = active
		if err := h.db.Save(&hours).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "could not save working hours")
			return
		}
		c.JSON(http.StatusOK, hours)
	default:
		hours = models.WorkingHours{
			SalonID:   salon.ID,
			DayOfWeek: req.DayOfWeek,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			IsActive:  active,
		}
		if err := h.db.Create(&hours).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "could not save working hours")
			return
		}
		httpresp.Created(c, hours)
	}
}

func (h *WorkingHoursHandler) Delete(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	hoursID, ok := paramUint(c, "hoursID")
	if !ok {
		httperr.BadRequest(c, "invalid_working_hours_id", "working hours id must be numeric")
		return
	}

	res := h.db.
		Where("id = ? AND salon_id = ?", hoursID, salon.ID).
		Delete(&models.WorkingHours{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_working_hours", "could not delete working hours")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "working_hours_not_found", "working hours not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
