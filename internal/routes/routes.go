package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Luexi/PAITITI/internal/audit"
	"github.com/Luexi/PAITITI/internal/config"
	"github.com/Luexi/PAITITI/internal/events"
	"github.com/Luexi/PAITITI/internal/handlers"
	infraRepo "github.com/Luexi/PAITITI/internal/infra/repository"
	"github.com/Luexi/PAITITI/internal/media"
	"github.com/Luexi/PAITITI/internal/middleware"
	ucBooking "github.com/Luexi/PAITITI/internal/usecase/booking"
	ucWalkin "github.com/Luexi/PAITITI/internal/usecase/walkin"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var sink events.Sink = events.NopSink{}
	if cfg.RedisURL != "" {
		if opts, err := redis.ParseURL(cfg.RedisURL); err == nil {
			sink = events.NewRedisSink(redis.NewClient(opts), cfg.EventsChannel)
		}
	}
	notifier := events.NewNotifier(sink)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		auditDispatcher,
		notifier,
	)

	listByDateUC := ucBooking.NewListReservationsByDate(bookingRepo)

	confirmUC := ucBooking.NewConfirmReservation(bookingRepo, auditDispatcher, notifier)
	seatUC := ucBooking.NewSeatReservation(bookingRepo, auditDispatcher, notifier)
	completeUC := ucBooking.NewCompleteReservation(bookingRepo, auditDispatcher, notifier)
	cancelUC := ucBooking.NewCancelReservation(bookingRepo, auditDispatcher, notifier)
	noShowUC := ucBooking.NewMarkNoShow(bookingRepo, auditDispatcher, notifier)

	liveTablesUC := ucBooking.NewLiveTables(bookingRepo)

	// ======================================================
	// USE CASES — WALK-INS
	// ======================================================
	createWalkinUC := ucWalkin.NewCreateWalkin(bookingRepo, auditDispatcher, notifier)
	assignWalkinUC := ucWalkin.NewAssignWalkinTable(bookingRepo, auditDispatcher, notifier)
	completeWalkinUC := ucWalkin.NewCompleteWalkin(bookingRepo, auditDispatcher, notifier)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	venueHandler := handlers.NewVenueHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	openingHoursHandler := handlers.NewOpeningHoursHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createReservationUC)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listByDateUC,
		confirmUC,
		seatUC,
		completeUC,
		cancelUC,
		noShowUC,
	)

	walkinHandler := handlers.NewWalkinHandler(
		db,
		createWalkinUC,
		assignWalkinUC,
		completeWalkinUC,
	)

	tableHandler := handlers.NewTableHandler(db, liveTablesUC, notifier)
	blockHandler := handlers.NewBlockHandler(db, notifier)
	guestHandler := handlers.NewGuestHandler(db)
	galleryHandler := handlers.NewGalleryHandler(db, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/availability", publicHandler.Availability)
		api.POST("/reservations", publicHandler.CreateReservation)
		api.GET("/gallery", galleryHandler.ListPublic)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (STAFF)
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/venue", venueHandler.GetMeVenue)
			secured.PATCH("/venue", venueHandler.UpdateMeVenue)

			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)

			secured.GET("/opening-hours", openingHoursHandler.Get)
			secured.PUT("/opening-hours", openingHoursHandler.Update)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.ListByDate)
			secured.PATCH("/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/reservations/:id/seat", reservationHandler.Seat)
			secured.PATCH("/reservations/:id/complete", reservationHandler.Complete)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/reservations/:id/no-show", reservationHandler.NoShow)

			// ------------------------------
			// WALK-INS
			// ------------------------------
			secured.POST("/walkins", walkinHandler.Create)
			secured.GET("/walkins", walkinHandler.ListActive)
			secured.PATCH("/walkins/:id/table", walkinHandler.AssignTable)
			secured.PATCH("/walkins/:id/complete", walkinHandler.Complete)

			// ------------------------------
			// MESAS Y PLANO
			// ------------------------------
			secured.GET("/tables", tableHandler.List)
			secured.GET("/tables/live", tableHandler.Live)
			secured.POST("/tables", tableHandler.Create)
			secured.PATCH("/tables/:id", tableHandler.Update)

			// ------------------------------
			// BLOQUEOS
			// ------------------------------
			secured.GET("/blocks", blockHandler.List)
			secured.POST("/blocks", blockHandler.Create)
			secured.DELETE("/blocks/:id", blockHandler.Delete)

			secured.GET("/guests", guestHandler.List)

			secured.POST("/gallery", galleryHandler.Upload)
			secured.DELETE("/gallery/:id", galleryHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
