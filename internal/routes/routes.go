package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/idohairstudios/salon-booking/internal/audit"
	"github.com/idohairstudios/salon-booking/internal/cache"
	"github.com/idohairstudios/salon-booking/internal/config"
	"github.com/idohairstudios/salon-booking/internal/handlers"
	infraRepo "github.com/idohairstudios/salon-booking/internal/infra/repository"
	"github.com/idohairstudios/salon-booking/internal/middleware"
	"github.com/idohairstudios/salon-booking/internal/notify"
	"github.com/idohairstudios/salon-booking/internal/payment"
	ucBooking "github.com/idohairstudios/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisCache *cache.Cache,
	gateway payment.Gateway,
	log zerolog.Logger,
) *ucBooking.SweepPending {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotLedger := infraRepo.NewSlotLedgerGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	sender := notify.NewLogSender(log)

	// ======================================================
	// USE CASES: BOOKING
	// ======================================================
	initializeUC := ucBooking.NewInitializeBooking(
		slotLedger,
		appointmentRepo,
		catalogRepo,
		gateway,
		auditDispatcher,
		cfg.AppURL,
		cfg.BookingEmailDomain,
		cfg.Timezone,
		log,
	)

	reconcileUC := ucBooking.NewReconcileBooking(
		slotLedger,
		appointmentRepo,
		gateway,
		redisCache,
		redisCache,
		auditDispatcher,
		sender,
		cfg.Timezone,
		log,
	)

	listDatesUC := ucBooking.NewListAvailableDates(
		slotLedger,
		redisCache,
		cfg.Timezone,
		log,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		slotLedger,
		appointmentRepo,
		redisCache,
		auditDispatcher,
		cfg.Timezone,
		log,
	)

	sweepUC := ucBooking.NewSweepPending(
		appointmentRepo,
		auditDispatcher,
		cfg.PendingTTL,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(initializeUC, reconcileUC, listDatesUC)
	datesHandler := handlers.NewDatesHandler(slotLedger, appointmentRepo, redisCache, auditDispatcher, cfg.Timezone)
	catalogHandler := handlers.NewCatalogHandler(db)
	appointmentsHandler := handlers.NewAppointmentsHandler(appointmentRepo, cancelUC, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/styles", catalogHandler.ListStyles)
			publicAPI.GET("/addon-services", catalogHandler.ListAddOns)
			publicAPI.GET("/available-dates", bookingHandler.ListAvailableDates)
			publicAPI.GET("/time-slots", bookingHandler.ListTimeSlots)

			publicAPI.POST("/bookings/initialize", bookingHandler.Initialize)
			publicAPI.POST("/bookings/verify", bookingHandler.Verify)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.POST("/available-dates", datesHandler.Create)
			admin.DELETE("/available-dates/:id", datesHandler.Delete)

			admin.POST("/styles", catalogHandler.CreateStyle)
			admin.PATCH("/styles/:id", catalogHandler.UpdateStyle)
			admin.POST("/addon-services", catalogHandler.CreateAddOn)
			admin.PATCH("/addon-services/:id", catalogHandler.UpdateAddOn)

			admin.GET("/appointments", appointmentsHandler.List)
			admin.PATCH("/appointments/:id/cancel", appointmentsHandler.Cancel)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return sweepUC
}
