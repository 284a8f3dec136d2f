package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lemonscar/detailing-api/internal/audit"
	"github.com/lemonscar/detailing-api/internal/catalog"
	"github.com/lemonscar/detailing-api/internal/config"
	"github.com/lemonscar/detailing-api/internal/handlers"
	infraRepo "github.com/lemonscar/detailing-api/internal/infra/repository"
	"github.com/lemonscar/detailing-api/internal/mailer"
	"github.com/lemonscar/detailing-api/internal/metrics"
	"github.com/lemonscar/detailing-api/internal/middleware"
	"github.com/lemonscar/detailing-api/internal/storage"
	ucBooking "github.com/lemonscar/detailing-api/internal/usecase/booking"
)

// Deps carries the process-level singletons main builds once.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *zap.Logger
	Catalog catalog.Store
	Mailer  *mailer.Dispatcher
	Images  *storage.ImageStore
	Metrics *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Logger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS & CHECKOUT
	// ======================================================
	placeBookingUC := ucBooking.NewPlaceBooking(
		bookingRepo,
		d.Catalog,
		d.Mailer,
		auditDispatcher,
		d.Metrics,
	)

	checkoutUC := ucBooking.NewCheckout(
		bookingRepo,
		d.Mailer,
		auditDispatcher,
		d.Metrics,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)

	catalogHandler := handlers.NewCatalogHandler(d.Catalog, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(d.Catalog, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(d.DB, placeBookingUC)
	checkoutHandler := handlers.NewCheckoutHandler(d.DB, checkoutUC)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		d.DB,
		completeBookingUC,
		cancelBookingUC,
	)

	imageHandler := handlers.NewImageHandler(d.DB, d.Images, auditDispatcher, d.Metrics)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

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
			publicAPI.GET("/services", catalogHandler.ListPublic)
			publicAPI.GET("/settings", settingsHandler.Get)
			publicAPI.GET("/time-slots", bookingHandler.TimeSlots)
			publicAPI.GET("/payment-methods", checkoutHandler.PaymentMethods)
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
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", meHandler.ListMyBookings)
			secured.GET("/me/orders", meHandler.ListMyOrders)

			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/checkout", checkoutHandler.Create)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/services", catalogHandler.ListAdmin)
				admin.POST("/services", catalogHandler.Create)
				admin.PUT("/services/:id", catalogHandler.Update)
				admin.DELETE("/services/:id", catalogHandler.Delete)

				admin.PUT("/settings", settingsHandler.Update)

				admin.GET("/bookings", adminBookingHandler.List)
				admin.PATCH("/bookings/:id/complete", adminBookingHandler.Complete)
				admin.PATCH("/bookings/:id/cancel", adminBookingHandler.Cancel)

				admin.POST("/images", imageHandler.Upload)
				admin.GET("/images", imageHandler.List)
				admin.DELETE("/images/:id", imageHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
