package repository

import (
	"context"

	"scooter-backoffice/internal/domain"
)

type AdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) error
	SetPassword(ctx context.Context, username, passwordHash string) error
}

type ScooterRepository interface {
	Create(ctx context.Context, s *domain.Scooter) error
	GetByID(ctx context.Context, id int32) (*domain.Scooter, error)
	List(ctx context.Context) ([]domain.Scooter, error)
	Search(ctx context.Context, term string) ([]domain.Scooter, error)
	Update(ctx context.Context, s *domain.Scooter) error
	UpdateStatus(ctx context.Context, id int32, status domain.ScooterStatus) error
	SetMaintenanceCount(ctx context.Context, id int32, count int32) error
	CountRentals(ctx context.Context, id int32) (int32, error)
	Delete(ctx context.Context, id int32) error
}

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	// UpsertByDocumentID reuses the row keyed by document_id when it exists,
	// overwriting the contact fields, and inserts otherwise. c.ID is set
	// either way.
	UpsertByDocumentID(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int32) error
}

// RentalRepository owns the rental rows and the paired scooter status flag.
// Every transition that touches both tables runs in a single transaction so
// the two cannot diverge partially.
type RentalRepository interface {
	// CreateActive books a rental: inside one transaction it locks the
	// scooter row, enforces the availability guard
	// (quantity - active rentals - maintenance_count > 0), inserts the
	// rental as active and marks the scooter rented. Returns
	// domain.ErrScooterNotFound or domain.ErrScooterUnavailable.
	CreateActive(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.RentalWithDetails, error)
	// Update rewrites the non-status fields of a rental.
	Update(ctx context.Context, r *domain.Rental) error
	// Complete flips active -> completed and frees the scooter when no other
	// active rental holds it.
	Complete(ctx context.Context, id int32) error
	// Revert flips completed -> active and marks the scooter rented again.
	Revert(ctx context.Context, id int32) error
	// Delete removes the rental; when it was active the scooter is freed in
	// the same transaction.
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.RentalWithDetails, error)
	ListActive(ctx context.Context) ([]domain.RentalWithDetails, error)
	ListCompleted(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error)
	ListLatest(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error)
}

type ExpenseRepository interface {
	List(ctx context.Context) ([]domain.Expense, error)
	GetByID(ctx context.Context, id int32) (*domain.Expense, error)
	Create(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id int32) error
}

type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	// GetMonthlyStats returns revenue/expense buckets for the trailing six
	// months, oldest first.
	GetMonthlyStats(ctx context.Context) ([]domain.MonthlyStat, error)
	GetTopScooters(ctx context.Context, limit int32) ([]domain.TopScooter, error)
}
