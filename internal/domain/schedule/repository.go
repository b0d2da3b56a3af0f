package schedule

import (
	"context"
	"time"

	"github.com/louk-2005/AppointmentSite/internal/models"
)

// TimeSlotFilter narrows slot listings.
type TimeSlotFilter struct {
	SalonID  uint
	Date     *time.Time
	IsActive *bool
}

// AppointmentFilter narrows appointment listings to what the acting
// role may see.
type AppointmentFilter struct {
	CustomerID *uint
	StaffID    *uint
	ManagerID  *uint // scopes to salons managed by this user
	SalonID    *uint
	Status     *Status
	Date       *time.Time
}

type Repository interface {
	// Transact runs fn against a repository bound to one transaction.
	// Booking, generation and block operations rely on it.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Salon / config --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonForManager(
		ctx context.Context,
		salonID uint,
		managerID uint,
	) (*models.Salon, error)

	GetSlotConfig(
		ctx context.Context,
		salonID uint,
	) (*models.SlotConfig, error)

	ListActiveWorkingHours(
		ctx context.Context,
		salonID uint,
	) ([]models.WorkingHours, error)

	// -------- Blocked ranges --------
	CreateBlockedTime(
		ctx context.Context,
		b *models.BlockedTime,
	) error

	DeleteBlockedTimesExact(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) (int64, error)

	ListBlockedTimesOverlapping(
		ctx context.Context,
		salonID uint,
		from time.Time,
		to time.Time,
	) ([]models.BlockedTime, error)

	ListBlockedTimes(
		ctx context.Context,
		salonID uint,
	) ([]models.BlockedTime, error)

	// -------- Time slots --------
	GetTimeSlot(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	// GetTimeSlotForUpdate takes a row lock; only valid inside Transact.
	GetTimeSlotForUpdate(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	// UpsertTimeSlot creates or updates the slot keyed by
	// (salon, date, start_time). BookedCount of an existing row is
	// never overwritten.
	UpsertTimeSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// ListSlotsByTimeOfDay selects slots of one date whose start_time
	// falls in [startHM, endHM), filtered by active state.
	ListSlotsByTimeOfDay(
		ctx context.Context,
		salonID uint,
		date time.Time,
		startHM string,
		endHM string,
		active bool,
	) ([]models.TimeSlot, error)

	ListTimeSlots(
		ctx context.Context,
		filter TimeSlotFilter,
	) ([]models.TimeSlot, error)

	ListAvailableSlots(
		ctx context.Context,
		salonID uint,
		date time.Time,
	) ([]models.TimeSlot, error)

	// SaveSlotBlockState persists the active flag together with the
	// slot's block log after a Block/Unblock domain action.
	SaveSlotBlockState(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	SaveTimeSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// HasActiveAppointmentOnDate reports whether the customer already
	// holds a PENDING or CONFIRMED appointment on the given date,
	// across all salons.
	HasActiveAppointmentOnDate(
		ctx context.Context,
		customerID uint,
		date time.Time,
	) (bool, error)

	ListAppointments(
		ctx context.Context,
		filter AppointmentFilter,
	) ([]models.Appointment, error)
}
