package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/middleware"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// principal builds the explicit actor handed to the core operations
// from the authenticated request context.
func principal(c *gin.Context) domain.Principal {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	roleVal, _ := c.Get(middleware.ContextUserRole)

	p := domain.Principal{}
	if id, ok := userIDVal.(uint); ok {
		p.UserID = id
	}
	if role, ok := roleVal.(string); ok {
		p.Role = role
	}
	return p
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// parseDate parses "YYYY-MM-DD" in the platform timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(""),
	)
}

// parseDateTime parses "YYYY-MM-DD HH:MM" in the platform timezone.
func parseDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		value,
		timezone.Location(""),
	)
}
