package postgres

import (
	"context"
	"database/sql"

	"scooter-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AdminUserRepository
	repository.ScooterRepository
	repository.ClientRepository
	repository.RentalRepository
	repository.ExpenseRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		AdminUserRepository: NewAdminUserRepository(db),
		ScooterRepository:   NewScooterRepository(db),
		ClientRepository:    NewClientRepository(db),
		RentalRepository:    NewRentalRepository(db),
		ExpenseRepository:   NewExpenseRepository(db),
		StatsRepository:     NewStatsRepository(db),
	}
}

// InitSchema creates the tables when they do not exist yet. The service owns
// its schema; there is no external migration tool.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS admin_users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS scooters (
		id SERIAL PRIMARY KEY,
		slug TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		engine TEXT NOT NULL DEFAULT '',
		speed TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'available',
		plate TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 1,
		maintenance_count INTEGER NOT NULL DEFAULT 0,
		last_maintenance DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		document_id TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS rentals (
		id SERIAL PRIMARY KEY,
		scooter_id INTEGER NOT NULL REFERENCES scooters(id),
		client_id INTEGER NOT NULL REFERENCES clients(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		amount_paid NUMERIC(10,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		payment_method TEXT NOT NULL DEFAULT 'cash',
		has_guarantee BOOLEAN NOT NULL DEFAULT FALSE,
		deposit_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rentals_scooter_status ON rentals (scooter_id, status);
	CREATE INDEX IF NOT EXISTS idx_rentals_status_end_date ON rentals (status, end_date);

	CREATE TABLE IF NOT EXISTS expenses (
		id SERIAL PRIMARY KEY,
		category TEXT NOT NULL,
		amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		date DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}
