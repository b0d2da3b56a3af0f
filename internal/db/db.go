package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/config"
	"github.com/louk-2005/AppointmentSite/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(Models()...); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Models lists every persisted entity, in dependency order. Shared with
// the sqlite-backed test setup.
func Models() []any {
	return []any{
		&models.User{},
		&models.Salon{},
		&models.WorkingHours{},
		&models.SlotConfig{},
		&models.TimeSlot{},
		&models.TimeSlotBlock{},
		&models.BlockedTime{},
		&models.Service{},
		&models.Appointment{},
		&models.ContactInfo{},
		&models.SocialLink{},
		&models.AuditLog{},
	}
}
