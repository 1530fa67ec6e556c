package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/cache"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	waitlistdomain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	ucAvailability "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/barber-agenda/internal/usecase/booking"
	ucClosure "github.com/BruksfildServices01/barber-agenda/internal/usecase/closure"
	ucSchedule "github.com/BruksfildServices01/barber-agenda/internal/usecase/schedule"
	ucWaitlist "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitlist"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	engineRepo := infraRepo.NewEngineGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	waitlistRepo := infraRepo.NewWaitlistGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var offerLock waitlistdomain.OfferLock
	if cfg.RedisAddr != "" {
		offerLock = cache.NewRedisOfferLock(cfg.RedisAddr)
	} else {
		// sem redis configurado: instância única, lock local basta
		offerLock = cache.NoopOfferLock{}
	}

	notifier := notify.NewLogNotifier(log.Logger)

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY ENGINE
	// ======================================================
	resolveUC := ucAvailability.NewResolve(engineRepo, log.Logger)
	batchUC := ucAvailability.NewResolveBatch(engineRepo, log.Logger)

	// ======================================================
	// 🧠 USE CASES — WAITLIST
	// ======================================================
	matcher := ucWaitlist.NewMatcher(
		waitlistRepo,
		resolveUC,
		offerLock,
		notifier,
		time.Duration(cfg.OfferTTLMinutes)*time.Minute,
		log.Logger,
	)

	joinUC := ucWaitlist.NewJoin(waitlistRepo, auditDispatcher)
	claimUC := ucWaitlist.NewClaim(waitlistRepo, offerLock, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreate(bookingRepo, resolveUC, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancel(bookingRepo, auditDispatcher, matcher)
	completeBookingUC := ucBooking.NewComplete(bookingRepo, auditDispatcher)
	listDayUC := ucBooking.NewListDay(bookingRepo)

	// ======================================================
	// 🧠 USE CASES — CLOSURES & SCHEDULE
	// ======================================================
	createClosureUC := ucClosure.NewCreateDateClosure(engineRepo, auditDispatcher)
	deleteClosureUC := ucClosure.NewDeleteDateClosure(engineRepo, auditDispatcher, matcher)
	upsertRecurringUC := ucClosure.NewUpsertRecurringClosure(engineRepo, engineRepo, auditDispatcher, matcher)

	upsertScheduleUC := ucSchedule.NewUpsert(engineRepo, auditDispatcher)
	appendSlotUC := ucSchedule.NewAppendSlotForWeekday(engineRepo, engineRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, resolveUC, batchUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listDayUC,
	)
	waitlistHandler := handlers.NewWaitlistHandler(db, waitlistRepo, joinUC, claimUC)
	closureHandler := handlers.NewClosureHandler(
		db,
		engineRepo,
		createClosureUC,
		deleteClosureUC,
		upsertRecurringUC,
	)
	scheduleHandler := handlers.NewScheduleHandler(db, upsertScheduleUC, appendSlotUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/:slug/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)

			publicAPI.GET("/:slug/barbers/:barberID/slots", availabilityHandler.Slots)
			publicAPI.POST("/:slug/batch-availability", availabilityHandler.Batch)

			publicAPI.POST("/:slug/bookings", bookingHandler.Create)
			publicAPI.POST("/bookings/:publicID/cancel", bookingHandler.CancelPublic)

			publicAPI.POST("/:slug/waitlist", waitlistHandler.Join)
			publicAPI.POST("/waitlist/:publicID/claim", waitlistHandler.Claim)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// AGENDA DO DIA
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListMyDay)
			secured.POST("/me/bookings/:id/cancel", bookingHandler.CancelMine)
			secured.POST("/me/bookings/:id/complete", bookingHandler.CompleteMine)

			// ------------------------------
			// FECHAMENTOS
			// ------------------------------
			secured.GET("/me/closures", closureHandler.List)
			secured.POST("/me/closures", closureHandler.Create)
			secured.DELETE("/me/closures/:id", closureHandler.Delete)
			secured.GET("/me/recurring-closure", closureHandler.GetRecurring)
			secured.PUT("/me/recurring-closure", closureHandler.UpsertRecurring)

			// ------------------------------
			// SCHEDULE POR DATA
			// ------------------------------
			secured.GET("/me/day-schedules", scheduleHandler.List)
			secured.PUT("/me/day-schedules", scheduleHandler.Upsert)
			secured.POST("/me/day-schedules/append-slot", scheduleHandler.AppendSlot)

			// ------------------------------
			// FILA DE ESPERA
			// ------------------------------
			secured.GET("/me/waitlist", waitlistHandler.ListMine)
		}
	}
}
