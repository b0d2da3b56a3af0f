package schedule

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/louk-2005/AppointmentSite/internal/db"
	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	infraRepo "github.com/louk-2005/AppointmentSite/internal/infra/repository"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/timezone"
)

// fixture wires an in-memory database behind the real repository
// implementation, with one manager, one customer and one salon.
type fixture struct {
	db   *gorm.DB
	repo domain.Repository

	manager  models.User
	customer models.User
	salon    models.Salon
}

func (f *fixture) asManager() domain.Principal {
	return domain.Principal{UserID: f.manager.ID, Role: models.RoleManager}
}

func (f *fixture) asCustomer() domain.Principal {
	return domain.Principal{UserID: f.customer.ID, Role: models.RoleCustomer}
}

var userSeq int

func newFixture(t *testing.T) *fixture {
	t.Helper()

	// _loc keeps read-back timestamps in the platform timezone, so
	// date equality survives a write/read round trip.
	dsn := fmt.Sprintf("file::memory:?_loc=%s", url.QueryEscape(timezone.DefaultTimezone))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(dbpkg.Models()...))

	f := &fixture{
		db:   db,
		repo: infraRepo.NewScheduleGormRepository(db),
	}

	f.manager = f.newUser(t, models.RoleManager)
	f.customer = f.newUser(t, models.RoleCustomer)

	f.salon = models.Salon{
		Name:      "Golden Scissors",
		Address:   "12 Valiasr St",
		ManagerID: f.manager.ID,
	}
	require.NoError(t, db.Create(&f.salon).Error)

	return f
}

func (f *fixture) newUser(t *testing.T, role string) models.User {
	t.Helper()

	userSeq++
	user := models.User{
		Username:     fmt.Sprintf("user%d", userSeq),
		Email:        fmt.Sprintf("user%d@example.com", userSeq),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, f.db.Create(&user).Error)
	return user
}

func (f *fixture) seedConfig(t *testing.T, intervalMinutes, capacity int) {
	t.Helper()

	require.NoError(t, f.db.Create(&models.SlotConfig{
		SalonID:         f.salon.ID,
		IntervalMinutes: intervalMinutes,
		CapacityPerSlot: capacity,
	}).Error)
}

func (f *fixture) seedHours(t *testing.T, weekday int, start, end string) {
	t.Helper()

	require.NoError(t, f.db.Create(&models.WorkingHours{
		SalonID:   f.salon.ID,
		DayOfWeek: weekday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}).Error)
}

func (f *fixture) seedSlot(t *testing.T, date time.Time, start, end string, capacity int) models.TimeSlot {
	t.Helper()

	slot := models.TimeSlot{
		SalonID:     f.salon.ID,
		Date:        timezone.DateOnly(date),
		StartTime:   start,
		EndTime:     end,
		MaxCapacity: capacity,
		IsActive:    true,
	}
	require.NoError(t, f.db.Create(&slot).Error)
	return slot
}

func (f *fixture) slotsOn(t *testing.T, date time.Time) []models.TimeSlot {
	t.Helper()

	var slots []models.TimeSlot
	require.NoError(t, f.db.
		Where("salon_id = ? AND date = ?", f.salon.ID, timezone.DateOnly(date)).
		Order("start_time ASC").
		Find(&slots).Error)
	return slots
}

func (f *fixture) reloadSlot(t *testing.T, id uint) models.TimeSlot {
	t.Helper()

	var slot models.TimeSlot
	require.NoError(t, f.db.Preload("Blocks").First(&slot, id).Error)
	return slot
}

// testDate returns a fixed reference date in the platform timezone,
// offset by days; day 0 is a known weekday so working hours can target
// it deterministically.
func testDate(days int) time.Time {
	loc := timezone.Location("")
	return time.Date(2026, 3, 2, 0, 0, 0, 0, loc).AddDate(0, 0, days)
}
