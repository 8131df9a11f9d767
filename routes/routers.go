package routes

import (
	"net/http"

	"stayrooted/constants"
	"stayrooted/controllers"
	_ "stayrooted/docs"
	middlewares "stayrooted/middleware"
	"stayrooted/services"
	"stayrooted/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies gom các service cần cho router
type Dependencies struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Filters  *services.FiltersCache
	Bookings *services.BookingService
	Host     *services.HostService
	Upload   *services.UploadService
	Melody   *melody.Melody
	Logger   logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	catalogController := controllers.NewCatalogController(deps.Catalog, deps.Filters, deps.Logger)
	authController := controllers.NewAuthController(deps.Auth)
	bookingController := controllers.NewBookingController(deps.Bookings)
	hostController := controllers.NewHostController(deps.Host, deps.Upload)
	profileController := controllers.NewProfileController(deps.Catalog, deps.Bookings)
	notificationController := controllers.NewNotificationController(deps.Auth, deps.Melody, deps.Logger)

	router.Use(middlewares.ErrorHandler())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/ws", notificationController.Connect)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middlewares.AuthMiddleware(deps.Auth)
	hostOnly := middlewares.AuthMiddleware(deps.Auth, constants.RoleHost)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Catalog
	v1.GET("/home", catalogController.Home)
	v1.GET("/options", catalogController.Options)
	v1.GET("/suggest", catalogController.Suggest)
	v1.GET("/experiences", catalogController.ListExperiences)
	v1.GET("/experiences/map", catalogController.ExperiencesMap)
	v1.GET("/experiences/last-filters", catalogController.LastFilters)
	v1.DELETE("/last-filters", catalogController.ClearLastFilters)
	v1.GET("/experience/:id", catalogController.GetExperience)
	v1.GET("/stays", catalogController.ListStays)
	v1.GET("/stay/:id", catalogController.GetStay)

	// Booking
	v1.POST("/experience/:id/quote", bookingController.QuoteExperience)
	v1.POST("/experience/:id/book", auth, bookingController.BookExperience)
	v1.POST("/stay/:id/quote", bookingController.QuoteStay)
	v1.POST("/stay/:id/book", auth, bookingController.BookStay)
	v1.GET("/bookings", auth, bookingController.ListBookings)
	v1.PUT("/bookings/:id/status", auth, bookingController.ChangeStatus)

	// Auth
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/google", authController.GoogleLogin)
	v1.DELETE("/auth/logout", auth, authController.Logout)
	v1.GET("/profile", auth, profileController.Profile)

	// Host
	v1.GET("/host-dashboard", hostOnly, hostController.Dashboard)
	v1.POST("/host/experiences", hostOnly, hostController.CreateExperience)
	v1.POST("/host/stays", hostOnly, hostController.CreateStay)
	v1.POST("/img/upload", hostOnly, hostController.UploadImages)
}
