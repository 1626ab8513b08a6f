package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"scooter-backoffice/internal/config"
	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/logger"
	"scooter-backoffice/internal/repository/postgres"
	"scooter-backoffice/internal/service"
)

// Seeds the database with the initial admin account and a starter fleet.
// Safe to re-run: the admin password is reset in place and scooters are only
// inserted when the table is empty.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	adminUser := flag.String("admin-user", "admin", "Admin username to create")
	adminPass := flag.String("admin-pass", "", "Admin password (required)")
	flag.Parse()

	if *adminPass == "" {
		log.Fatal("-admin-pass is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	store := postgres.NewStore(db)
	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	hash, err := service.HashPassword(*adminPass)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if _, err := store.AdminUserRepository.GetByUsername(ctx, *adminUser); err != nil {
		if err := store.AdminUserRepository.Create(ctx, &domain.AdminUser{
			Username:     *adminUser,
			PasswordHash: hash,
		}); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		logger.Info("Admin user created", "username", *adminUser)
	} else {
		if err := store.AdminUserRepository.SetPassword(ctx, *adminUser, hash); err != nil {
			log.Fatalf("Failed to reset admin password: %v", err)
		}
		logger.Info("Admin password reset", "username", *adminUser)
	}

	existing, err := store.ScooterRepository.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list scooters: %v", err)
	}
	if len(existing) > 0 {
		logger.Info("Fleet already seeded", "count", len(existing))
		return
	}

	fleet := []domain.Scooter{
		{Slug: "city-cruiser", Name: "City Cruiser", Engine: "250W", Speed: "25 km/h", Price: 80, Status: domain.ScooterStatusAvailable, Plate: "SC-001", Quantity: 3},
		{Slug: "urban-dash", Name: "Urban Dash", Engine: "350W", Speed: "30 km/h", Price: 100, Status: domain.ScooterStatusAvailable, Plate: "SC-002", Quantity: 2},
		{Slug: "long-ranger", Name: "Long Ranger", Engine: "500W", Speed: "35 km/h", Price: 150, Status: domain.ScooterStatusAvailable, Plate: "SC-003", Quantity: 1},
	}
	for i := range fleet {
		if err := store.ScooterRepository.Create(ctx, &fleet[i]); err != nil {
			log.Fatalf("Failed to seed scooter %q: %v", fleet[i].Name, err)
		}
	}
	logger.Info("Fleet seeded", "count", len(fleet))
}
