package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/audit"
	"github.com/studio-beleza/salon-scheduler/internal/cache"
	"github.com/studio-beleza/salon-scheduler/internal/config"
	"github.com/studio-beleza/salon-scheduler/internal/handlers"
	infraRepo "github.com/studio-beleza/salon-scheduler/internal/infra/repository"
	ucAppointment "github.com/studio-beleza/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var slots *cache.SlotCache
	if cfg.RedisAddr != "" {
		slots = cache.NewSlotCache(cfg.RedisAddr, time.Duration(cfg.SlotCacheTTLSec)*time.Second)
	}

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		slots,
		cfg.Hours(),
		cfg.StrictAvailability,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		slots,
		cfg.SerializeBookings,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientRepo)
	professionalHandler := handlers.NewProfessionalHandler(professionalRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		availabilityUC,
		slots,
		auditDispatcher,
	)

	paymentHandler := handlers.NewPaymentHandler(paymentRepo, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.GET("/professionals/:id", professionalHandler.Get)
		api.POST("/professionals", professionalHandler.Create)
		api.PUT("/professionals/:id", professionalHandler.Update)
		api.DELETE("/professionals/:id", professionalHandler.Delete)
		api.GET("/professionals/:id/free-slots/:date", appointmentHandler.FreeSlots)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.GET("/appointments/by-client/:identifier", appointmentHandler.ByClient)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.GET("/payments/by-appointment/:id", paymentHandler.GetByAppointment)
		api.POST("/payments", paymentHandler.Create)

		// ------------------------------
		// CATALOG (read-only)
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/rooms", catalogHandler.ListRooms)
		api.GET("/specialties", catalogHandler.ListSpecialties)
	}
}
