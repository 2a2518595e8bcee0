package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nerobarber/booking-api/internal/audit"
	"github.com/nerobarber/booking-api/internal/config"
	"github.com/nerobarber/booking-api/internal/handlers"
	infraRepo "github.com/nerobarber/booking-api/internal/infra/repository"
	"github.com/nerobarber/booking-api/internal/lock"
	"github.com/nerobarber/booking-api/internal/middleware"
	"github.com/nerobarber/booking-api/internal/storage"
	ucAppointment "github.com/nerobarber/booking-api/internal/usecase/appointment"
	ucBarbershop "github.com/nerobarber/booking-api/internal/usecase/barbershop"
	"github.com/nerobarber/booking-api/internal/usecase/profile"
)

func Register(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locks lock.Locker,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	profileRepo := infraRepo.NewProfileGormRepository(db)
	shopRepo := infraRepo.NewBarbershopGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	logoStore := storage.NewLogoStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	resolver := profile.NewResolver(profileRepo, log)
	bootstrap := ucBarbershop.NewBootstrap(shopRepo, auditDispatcher)

	createBookingUC := ucAppointment.NewCreateBooking(bookingRepo, auditDispatcher)
	advanceStatusUC := ucAppointment.NewAdvanceStatus(bookingRepo, locks, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(bookingRepo)
	summarizeUC := ucAppointment.NewSummarize(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(resolver, createBookingUC, listAppointmentsUC)
	barbershopHandler := handlers.NewBarbershopHandler(db, bootstrap, logoStore)
	serviceHandler := handlers.NewServiceHandler(db, bootstrap)
	productHandler := handlers.NewProductHandler(bootstrap)
	appointmentHandler := handlers.NewAppointmentHandler(
		bootstrap,
		advanceStatusUC,
		listAppointmentsUC,
		summarizeUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, bootstrap)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC BROWSING
		// ------------------------------
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:id/services", barbershopHandler.ListServices)
		api.GET("/barbershops/:id/products", barbershopHandler.ListProducts)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/bookings", meHandler.CreateBooking)
			secured.GET("/me/bookings", meHandler.ListBookings)

			// ------------------------------
			// BARBER ONLY
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireBarber(resolver))
			{
				barber.GET("/me/barbershop", barbershopHandler.GetMine)
				barber.POST("/me/barbershop", barbershopHandler.Create)
				barber.POST("/me/barbershop/logo", barbershopHandler.UploadLogo)

				barber.GET("/me/services", serviceHandler.List)
				barber.POST("/me/services", serviceHandler.Create)

				barber.GET("/me/products", productHandler.List)
				barber.POST("/me/products", productHandler.Create)

				barber.GET("/me/appointments", appointmentHandler.List)
				barber.GET("/me/appointments/summary", appointmentHandler.Summary)
				barber.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
				barber.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

				barber.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
