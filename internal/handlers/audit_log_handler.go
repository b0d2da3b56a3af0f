package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

type AuditLogHandler struct {
	db *gorm.DB
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{db: db}
}

// List returns the salon's audit trail, newest first, optionally
// filtered by action.
func (h *AuditLogHandler) List(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	q := h.db.Where("salon_id = ?", salon.ID)
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Order("id DESC").Limit(200).Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "could not list audit logs")
		return
	}

	httpresp.List(c, logs)
}
