package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/homebarberid/booking-api/internal/audit"
	"github.com/homebarberid/booking-api/internal/auth"
	"github.com/homebarberid/booking-api/internal/config"
	"github.com/homebarberid/booking-api/internal/geo"
	"github.com/homebarberid/booking-api/internal/handlers"
	"github.com/homebarberid/booking-api/internal/infra/repository"
	"github.com/homebarberid/booking-api/internal/middleware"
	"github.com/homebarberid/booking-api/internal/models"
	"github.com/homebarberid/booking-api/internal/pricing"
	"github.com/homebarberid/booking-api/internal/storage"
	bookinguc "github.com/homebarberid/booking-api/internal/usecase/booking"
	paymentuc "github.com/homebarberid/booking-api/internal/usecase/payment"
	reviewuc "github.com/homebarberid/booking-api/internal/usecase/review"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// router. All dependencies flow from here; nothing reads globals.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// SHARED INFRASTRUCTURE
	// ======================================================

	denylist := auth.NewDenylist(cfg.RedisAddr, cfg.RedisPassword)
	images := storage.NewImageStore(cfg)
	dispatcher := audit.NewDispatcher(audit.New(db))

	resolver := geo.NewResolver(cfg.DistanceMatrixURL, cfg.GoogleMapsAPIKey)
	engine := pricing.NewEngine(resolver)

	bookingRepo := repository.NewBookingGormRepository(db)
	paymentRepo := repository.NewPaymentGormRepository(db)
	reviewRepo := repository.NewReviewGormRepository(db)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	profileHandler := handlers.NewProfileHandler(db, images)
	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)
	portfolioHandler := handlers.NewPortfolioHandler(db, images)

	bookingHandler := handlers.NewBookingHandler(
		bookinguc.NewCreateBooking(bookingRepo, engine, dispatcher),
		bookinguc.NewUpdateBooking(bookingRepo, engine),
		bookinguc.NewCancelBooking(bookingRepo, dispatcher),
		bookinguc.NewSetBookingStatus(bookingRepo, dispatcher),
		bookinguc.NewGetBooking(bookingRepo),
		bookinguc.NewListMyBookings(bookingRepo),
		bookinguc.NewListAllBookings(bookingRepo),
		bookinguc.NewDeleteBooking(bookingRepo, dispatcher),
	)

	paymentHandler := handlers.NewPaymentHandler(
		paymentuc.NewRecordPayment(paymentRepo, dispatcher),
		paymentuc.NewUpdatePayment(paymentRepo),
		paymentuc.NewGetPayment(paymentRepo),
		paymentuc.NewListAllPayments(paymentRepo),
		paymentuc.NewListMyPayments(paymentRepo),
		paymentuc.NewDeletePayment(paymentRepo),
	)

	reviewHandler := handlers.NewReviewHandler(
		reviewuc.NewCreateReview(reviewRepo, dispatcher),
		reviewuc.NewUpdateReview(reviewRepo),
		reviewuc.NewDeleteReview(reviewRepo),
		reviewuc.NewListReviews(reviewRepo),
	)

	// ======================================================
	// ROUTES
	// ======================================================

	api := r.Group("/api")

	// Public.
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Any authenticated user.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg, denylist))
	{
		authed.POST("/auth/logout", authHandler.Logout)

		authed.GET("/barbers", profileHandler.IndexBarbers)
		authed.GET("/barbers/:id", profileHandler.ShowBarber)
		authed.GET("/services", serviceHandler.Index)
		authed.GET("/services/:id", serviceHandler.Show)
		authed.GET("/barbers/:id/schedules", scheduleHandler.IndexByBarber)
		authed.GET("/barbers/:id/portfolios", portfolioHandler.IndexByBarber)
	}

	// Customer (pelanggan) surface.
	customer := api.Group("")
	customer.Use(
		middleware.AuthMiddleware(cfg, denylist),
		middleware.RequireRole(models.RolePelanggan),
	)
	{
		customer.POST("/customer/profile", profileHandler.StoreCustomer)
		customer.GET("/customer/profile", profileHandler.ShowMyCustomer)
		customer.POST("/customer/profile/photo", profileHandler.UploadCustomerPhoto)

		customer.POST("/bookings", bookingHandler.Store)
		customer.GET("/bookings", bookingHandler.Index)
		customer.GET("/bookings/:id", bookingHandler.Show)
		customer.PUT("/bookings/:id", bookingHandler.Update)
		customer.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		customer.DELETE("/bookings/:id", bookingHandler.Destroy)

		customer.POST("/payments", paymentHandler.Store)
		customer.GET("/payments", paymentHandler.Index)

		customer.POST("/bookings/:id/reviews", reviewHandler.Store)
		customer.PUT("/reviews/:id", reviewHandler.Update)
		customer.DELETE("/reviews/:id", reviewHandler.Destroy)
	}

	// Barber (admin) surface.
	barber := api.Group("/admin")
	barber.Use(
		middleware.AuthMiddleware(cfg, denylist),
		middleware.RequireRole(models.RoleAdmin),
	)
	{
		barber.POST("/profile", profileHandler.StoreBarber)
		barber.GET("/profile", profileHandler.ShowMyBarber)

		barber.GET("/services", serviceHandler.IndexMine)
		barber.POST("/services", serviceHandler.Store)
		barber.PUT("/services/:id", serviceHandler.Update)
		barber.DELETE("/services/:id", serviceHandler.Destroy)

		barber.GET("/schedules", scheduleHandler.IndexMine)
		barber.POST("/schedules", scheduleHandler.Store)
		barber.PUT("/schedules/:id", scheduleHandler.Update)
		barber.DELETE("/schedules/:id", scheduleHandler.Destroy)

		barber.POST("/portfolios", portfolioHandler.Store)
		barber.PUT("/portfolios/:id", portfolioHandler.Update)
		barber.DELETE("/portfolios/:id", portfolioHandler.Destroy)

		barber.GET("/bookings", bookingHandler.IndexAll)
		barber.GET("/bookings/:id", bookingHandler.Show)
		barber.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		barber.GET("/payments", paymentHandler.IndexAll)
		barber.GET("/payments/:id", paymentHandler.Show)
		barber.PUT("/payments/:id", paymentHandler.Update)
		barber.DELETE("/payments/:id", paymentHandler.Destroy)

		barber.GET("/reviews", reviewHandler.IndexAll)
	}
}
