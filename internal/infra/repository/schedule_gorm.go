package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/louk-2005/AppointmentSite/internal/domain/schedule"
	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// translate maps driver errors to application errors. Unique-index
// violations surface as conflicts so callers may retry another slot.
func translate(err error, notFoundCode string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(notFoundCode, "record not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.Conflict("duplicate_record", "a conflicting record already exists")
	}
	return err
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *ScheduleGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Salon / config
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, translate(err, "salon_not_found")
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetSalonForManager(
	ctx context.Context,
	salonID uint,
	managerID uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("id = ? AND manager_id = ?", salonID, managerID).
		First(&salon).Error; err != nil {
		return nil, translate(err, "salon_not_found")
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetSlotConfig(
	ctx context.Context,
	salonID uint,
) (*models.SlotConfig, error) {

	var cfg models.SlotConfig
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		First(&cfg).Error; err != nil {
		return nil, translate(err, "slot_config_not_found")
	}
	return &cfg, nil
}

func (r *ScheduleGormRepository) ListActiveWorkingHours(
	ctx context.Context,
	salonID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Blocked ranges
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlockedTime(
	ctx context.Context,
	b *models.BlockedTime,
) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, "")
}

func (r *ScheduleGormRepository) DeleteBlockedTimesExact(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND start_datetime = ? AND end_datetime = ?",
			salonID, start, end,
		).
		Delete(&models.BlockedTime{})

	return res.RowsAffected, res.Error
}

func (r *ScheduleGormRepository) ListBlockedTimesOverlapping(
	ctx context.Context,
	salonID uint,
	from time.Time,
	to time.Time,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND start_datetime < ? AND end_datetime > ?",
			salonID, to, from,
		).
		Order("start_datetime ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlockedTimes(
	ctx context.Context,
	salonID uint,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Time slots
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTimeSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Preload("Blocks").
		First(&slot, id).Error; err != nil {
		return nil, translate(err, "time_slot_not_found")
	}
	return &slot, nil
}

func (r *ScheduleGormRepository) GetTimeSlotForUpdate(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		return nil, translate(err, "time_slot_not_found")
	}
	return &slot, nil
}

func (r *ScheduleGormRepository) UpsertTimeSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {

	var existing models.TimeSlot
	err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND date = ? AND start_time = ?",
			slot.SalonID, slot.Date, slot.StartTime,
		).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return translate(r.db.WithContext(ctx).Create(slot).Error, "")
	}
	if err != nil {
		return err
	}

	// Existing row: refresh everything except the booking counter.
	if err := r.db.WithContext(ctx).
		Model(&existing).
		Select("end_time", "max_capacity", "is_active").
		Updates(map[string]any{
			"end_time":     slot.EndTime,
			"max_capacity": slot.MaxCapacity,
			"is_active":    slot.IsActive,
		}).Error; err != nil {
		return err
	}

	slot.ID = existing.ID
	slot.BookedCount = existing.BookedCount
	return nil
}

func (r *ScheduleGormRepository) ListSlotsByTimeOfDay(
	ctx context.Context,
	salonID uint,
	date time.Time,
	startHM string,
	endHM string,
	active bool,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Preload("Blocks").
		Where(
			"salon_id = ? AND date = ? AND start_time >= ? AND start_time < ? AND is_active = ?",
			salonID, date, startHM, endHM, active,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ListTimeSlots(
	ctx context.Context,
	filter domain.TimeSlotFilter,
) ([]models.TimeSlot, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ?", filter.SalonID)

	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	var slots []models.TimeSlot
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ListAvailableSlots(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND date = ? AND is_active = ? AND booked_count < max_capacity",
			salonID, date, true,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) SaveSlotBlockState(
	ctx context.Context,
	slot *models.TimeSlot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TimeSlot{}).
			Where("id = ?", slot.ID).
			Update("is_active", slot.IsActive).Error; err != nil {
			return err
		}

		if slot.IsActive {
			// Unblocked: the whole block log goes away.
			return tx.
				Where("time_slot_id = ?", slot.ID).
				Delete(&models.TimeSlotBlock{}).Error
		}

		for i := range slot.Blocks {
			if slot.Blocks[i].ID != 0 {
				continue
			}
			slot.Blocks[i].TimeSlotID = slot.ID
			if err := tx.Create(&slot.Blocks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ScheduleGormRepository) SaveTimeSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slot.ID).
		Update("booked_count", slot.BookedCount).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(r.db.WithContext(ctx).Create(ap).Error, "")
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("TimeSlot").
		First(&ap, id).Error; err != nil {
		return nil, translate(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":   ap.Status,
			"notes":    ap.Notes,
			"staff_id": ap.StaffID,
		}).Error
}

func (r *ScheduleGormRepository) HasActiveAppointmentOnDate(
	ctx context.Context,
	customerID uint,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("JOIN time_slots ON time_slots.id = appointments.time_slot_id").
		Where(
			"appointments.customer_id = ? AND appointments.status IN ? AND time_slots.date = ?",
			customerID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			date,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Customer").
		Preload("TimeSlot").
		Preload("Staff").
		Preload("Service")

	if filter.CustomerID != nil {
		q = q.Where("appointments.customer_id = ?", *filter.CustomerID)
	}
	if filter.StaffID != nil {
		q = q.Where("appointments.staff_id = ?", *filter.StaffID)
	}
	if filter.Status != nil {
		q = q.Where("appointments.status = ?", string(*filter.Status))
	}
	if filter.ManagerID != nil || filter.SalonID != nil || filter.Date != nil {
		q = q.Joins("JOIN time_slots ON time_slots.id = appointments.time_slot_id")
	}
	if filter.SalonID != nil {
		q = q.Where("time_slots.salon_id = ?", *filter.SalonID)
	}
	if filter.Date != nil {
		q = q.Where("time_slots.date = ?", *filter.Date)
	}
	if filter.ManagerID != nil {
		q = q.Joins("JOIN salons ON salons.id = time_slots.salon_id").
			Where("salons.manager_id = ?", *filter.ManagerID)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointments.created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
