package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	httpapi "scooter-backoffice/internal/api/http"
	"scooter-backoffice/internal/config"
	"scooter-backoffice/internal/jobs"
	"scooter-backoffice/internal/logger"
	"scooter-backoffice/internal/repository/postgres"
	"scooter-backoffice/internal/scheduler"
	"scooter-backoffice/internal/security"
	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
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
	logger.Info("Starting Scooter Back Office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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
	if err := store.InitSchema(context.Background()); err != nil {
		logger.Error("Failed to initialize schema", "error", err)
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.AdminEmail,
	)
	authSvc := service.NewAuthService(store.AdminUserRepository, tokenManager)
	scooterSvc := service.NewScooterService(store.ScooterRepository)
	clientSvc := service.NewClientService(store.ClientRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ScooterRepository, store.ClientRepository)
	expenseSvc := service.NewExpenseService(store.ExpenseRepository)
	dashboardSvc := service.NewDashboardService(store.StatsRepository)

	// Initialize HTTP handlers
	validator := validation.New()
	handlers := httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authSvc, validator),
		Scooter:   httpapi.NewScooterHandler(scooterSvc, validator),
		Client:    httpapi.NewClientHandler(clientSvc, validator),
		Rental:    httpapi.NewRentalHandler(rentalSvc, validator),
		Expense:   httpapi.NewExpenseHandler(expenseSvc, validator),
		Dashboard: httpapi.NewDashboardHandler(dashboardSvc),
	}
	router := httpapi.NewRouter(handlers, authMiddleware)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Rental: rentalSvc,
		Email:  emailSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Start HTTP server
	srv := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if err := srv.Close(); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}
