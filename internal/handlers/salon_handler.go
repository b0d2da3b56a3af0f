package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/middleware"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type UpdateSalonRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// --------- Handlers ---------

// ListPublic is the customer-facing salon directory with an optional
// name/address search.
func (h *SalonHandler) ListPublic(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Model(&models.Salon{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var salons []models.Salon
	if err := q.Order("id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "could not list salons")
		return
	}

	httpresp.List(c, salons)
}

// List returns only the salons managed by the acting user.
func (h *SalonHandler) List(c *gin.Context) {
	managerIDVal, _ := c.Get(middleware.ContextUserID)
	managerID := managerIDVal.(uint)

	var salons []models.Salon
	if err := h.db.
		Where("manager_id = ?", managerID).
		Order("id ASC").
		Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "could not list salons")
		return
	}

	httpresp.List(c, salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var salon models.Salon
	if err := h.db.
		Preload("WorkingHours").
		Preload("SlotConfig").
		First(&salon, id).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Create(c *gin.Context) {
	managerIDVal, _ := c.Get(middleware.ContextUserID)
	managerID := managerIDVal.(uint)

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	salon := models.Salon{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		ManagerID:   managerID,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "could not create salon")
		return
	}

	httpresp.Created(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	managerIDVal, _ := c.Get(middleware.ContextUserID)
	managerID := managerIDVal.(uint)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var salon models.Salon
	if err := h.db.
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "could not update salon")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// Delete removes the salon along with every owned child record:
// working hours, slot config, slots, blocks and blocked ranges.
func (h *SalonHandler) Delete(c *gin.Context) {
	managerIDVal, _ := c.Get(middleware.ContextUserID)
	managerID := managerIDVal.(uint)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	var salon models.Salon
	if err := h.db.
		Where("id = ? AND manager_id = ?", id, managerID).
		First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "salon not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var slotIDs []uint
		if err := tx.Model(&models.TimeSlot{}).
			Where("salon_id = ?", salon.ID).
			Pluck("id", &slotIDs).Error; err != nil {
			return err
		}

		if len(slotIDs) > 0 {
			if err := tx.Where("time_slot_id IN ?", slotIDs).
				Delete(&models.TimeSlotBlock{}).Error; err != nil {
				return err
			}
			if err := tx.Where("time_slot_id IN ?", slotIDs).
				Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
		}

		for _, child := range []any{
			&models.TimeSlot{},
			&models.BlockedTime{},
			&models.WorkingHours{},
			&models.SlotConfig{},
			&models.Service{},
		} {
			if err := tx.Where("salon_id = ?", salon.ID).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&salon).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_salon", "could not delete salon")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
