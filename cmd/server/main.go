package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "carshowroom-backend/internal/api/http"
	"carshowroom-backend/internal/config"
	"carshowroom-backend/internal/logger"
	"carshowroom-backend/internal/repository/postgres"
	"carshowroom-backend/internal/security"
	"carshowroom-backend/internal/service"
	"carshowroom-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Showroom Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Image Storage
	images, err := storage.NewImageStore(cfg.Storage.UploadDir, cfg.Storage.MaxFileSizeMB)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	logger.Info("Image storage initialized", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	carSvc := service.NewCarService(store.CarRepository, store.UserRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CarRepository,
		store.UserRepository,
		emailSvc,
	)
	visitSvc := service.NewVisitService(store.VisitRepository, store.UserRepository)

	// Initialize HTTP handlers
	authHandler := httpapi.NewAuthHandler(authSvc, images)
	userHandler := httpapi.NewUserHandler(userSvc, images)
	carHandler := httpapi.NewCarHandler(carSvc, userSvc, images)
	bookingHandler := httpapi.NewBookingHandler(bookingSvc)
	visitHandler := httpapi.NewVisitHandler(visitSvc)

	router := httpapi.NewRouter(
		authHandler,
		userHandler,
		carHandler,
		bookingHandler,
		visitHandler,
		authMiddleware,
		images,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
