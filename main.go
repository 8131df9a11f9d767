package main

import (
	"context"
	"log"

	"stayrooted/config"
	"stayrooted/jobs"
	"stayrooted/routes"
	"stayrooted/services"
	"stayrooted/services/logger"
	"stayrooted/services/notification"
	"stayrooted/store"
)

// @title                       StayRooted API
// @version                     1.0
// @description                 Marketplace for local experiences and rural homestays in India.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	appLogger, err := logger.NewZapLogger(logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	var (
		catalog  store.Catalog
		bookings store.Bookings
	)
	switch cfg.Store {
	case "postgres":
		db, err := config.ConnectDB(cfg.Env)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		gormStore := store.NewGormStore(db)
		if err := gormStore.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		catalog, bookings = gormStore, gormStore
		appLogger.Info("Using postgres store (%s)", cfg.Env)
	default:
		catalog, bookings = store.NewMemoryCatalog(), store.NewMemoryBookings()
		appLogger.Info("Using in-memory store")
	}

	var cache store.Cache = store.NewMemoryCache()
	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedis(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer rdb.Close()
		cache = store.NewRedisCache(rdb)
		appLogger.Info("Using redis at %s for sessions and filters", cfg.RedisAddr)
	}

	router, m, c := config.InitApp(cfg)

	hub := notification.NewHub(m)
	hub.Attach()

	var events notification.EventPublisher
	if cfg.AMQPURL != "" {
		publisher, err := notification.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect rabbitmq: %v", err)
		}
		defer publisher.Close()
		events = publisher
	}

	var imageUploader services.ImageUploader
	if cfg.CloudinaryURL != "" {
		cld, err := config.ConnectCloudinary(cfg)
		if err != nil {
			log.Fatalf("Failed to configure cloudinary: %v", err)
		}
		imageUploader = services.NewCloudinaryUploader(cld)
	}

	catalogService := services.NewCatalogService(catalog)
	authService := services.NewAuthService(services.AuthServiceOptions{
		Catalog:        catalog,
		Sessions:       cache,
		Tokens:         services.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Logger:         appLogger,
		Delay:          cfg.AuthDelay,
		SessionTTL:     cfg.SessionTTL,
		GoogleClientID: cfg.GoogleClientID,
	})
	dispatcher := notification.NewDispatcher(hub, events, appLogger)
	bookingService := services.NewBookingService(catalogService, bookings, dispatcher, appLogger)

	if err := jobs.InitCronJobs(c, bookingService, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Dependencies{
		Auth:     authService,
		Catalog:  catalogService,
		Filters:  services.NewFiltersCache(cache),
		Bookings: bookingService,
		Host:     services.NewHostService(catalogService, bookings, appLogger),
		Upload:   services.NewUploadService(imageUploader, appLogger),
		Melody:   m,
		Logger:   appLogger,
	})

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
