package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/audit"
	"github.com/louk-2005/AppointmentSite/internal/cache"
	"github.com/louk-2005/AppointmentSite/internal/config"
	"github.com/louk-2005/AppointmentSite/internal/handlers"
	infraRepo "github.com/louk-2005/AppointmentSite/internal/infra/repository"
	"github.com/louk-2005/AppointmentSite/internal/middleware"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/storage"
	ucSchedule "github.com/louk-2005/AppointmentSite/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailabilityCache(rdb)
	imageStore := storage.NewImageStore(cfg)

	// ======================================================
	// USE CASES (SCHEDULE ENGINE)
	// ======================================================
	generateSlotsUC := ucSchedule.NewGenerateSlots(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	blockRangeUC := ucSchedule.NewBlockRange(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	unblockRangeUC := ucSchedule.NewUnblockRange(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	blockSlotUC := ucSchedule.NewBlockSlot(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	unblockSlotUC := ucSchedule.NewUnblockSlot(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	listAvailableUC := ucSchedule.NewListAvailableSlots(
		scheduleRepo,
		availabilityCache,
	)

	createAppointmentUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	transitionUC := ucSchedule.NewTransitionAppointment(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	batchTransitionUC := ucSchedule.NewBatchTransition(
		scheduleRepo,
		auditDispatcher,
		transitionUC,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, imageStore)

	salonHandler := handlers.NewSalonHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	slotConfigHandler := handlers.NewSlotConfigHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, imageStore)
	contactHandler := handlers.NewContactHandler(db)
	auditLogHandler := handlers.NewAuditLogHandler(db)

	timeSlotHandler := handlers.NewTimeSlotHandler(
		scheduleRepo,
		generateSlotsUC,
		blockSlotUC,
		unblockSlotUC,
		listAvailableUC,
	)

	blockedTimeHandler := handlers.NewBlockedTimeHandler(
		scheduleRepo,
		blockRangeUC,
		unblockRangeUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleRepo,
		createAppointmentUC,
		transitionUC,
		batchTransitionUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/salons", salonHandler.ListPublic)
		api.GET("/salons/:id", salonHandler.Get)
		api.GET("/salons/:id/services", serviceHandler.ListPublic)
		api.GET("/salons/:id/available-slots", timeSlotHandler.Available)
		api.GET("/contact", contactHandler.Get)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/image", meHandler.UploadImage)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			staffOrManager := secured.Group("/")
			staffOrManager.Use(middleware.RequireRoles(models.RoleStaff, models.RoleManager))
			{
				staffOrManager.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				staffOrManager.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			}

			// ------------------------------
			// SALON MANAGEMENT
			// ------------------------------
			manager := secured.Group("/me/salons")
			manager.Use(middleware.RequireRoles(models.RoleManager))
			{
				manager.GET("", salonHandler.List)
				manager.POST("", salonHandler.Create)
				manager.PATCH("/:id", salonHandler.Update)
				manager.DELETE("/:id", salonHandler.Delete)

				manager.GET("/:id/working-hours", workingHoursHandler.List)
				manager.PUT("/:id/working-hours", workingHoursHandler.Upsert)
				manager.DELETE("/:id/working-hours/:hoursID", workingHoursHandler.Delete)

				manager.GET("/:id/slot-config", slotConfigHandler.Get)
				manager.PUT("/:id/slot-config", slotConfigHandler.Upsert)

				manager.GET("/:id/time-slots", timeSlotHandler.List)
				manager.GET("/:id/time-slots/:slotID", timeSlotHandler.Get)
				manager.POST("/:id/time-slots/generate", timeSlotHandler.Generate)
				manager.PATCH("/:id/time-slots/:slotID/block", timeSlotHandler.Block)
				manager.PATCH("/:id/time-slots/:slotID/unblock", timeSlotHandler.Unblock)

				manager.GET("/:id/blocked-times", blockedTimeHandler.List)
				manager.POST("/:id/blocked-times/block", blockedTimeHandler.BlockRange)
				manager.POST("/:id/blocked-times/unblock", blockedTimeHandler.UnblockRange)

				manager.GET("/:id/services", serviceHandler.List)
				manager.POST("/:id/services", serviceHandler.Create)
				manager.PATCH("/:id/services/:serviceID", serviceHandler.Update)
				manager.DELETE("/:id/services/:serviceID", serviceHandler.Delete)
				manager.POST("/:id/services/:serviceID/image", serviceHandler.UploadImage)

				manager.POST("/:id/appointments/batch", appointmentHandler.Batch)

				manager.GET("/:id/audit-logs", auditLogHandler.List)
			}

			// ------------------------------
			// PLATFORM CONTACT PAGE
			// ------------------------------
			contact := secured.Group("/contact")
			contact.Use(middleware.RequireRoles(models.RoleManager))
			{
				contact.PATCH("", contactHandler.Update)
				contact.POST("/links", contactHandler.AddSocialLink)
				contact.DELETE("/links/:linkID", contactHandler.DeleteSocialLink)
			}
		}
	}
}
