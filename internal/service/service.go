package service

import (
	"context"

	"scooter-backoffice/internal/domain"
)

type AuthService interface {
	// Login checks the admin credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *domain.AdminUser, error)
}

type ScooterService interface {
	ListScooters(ctx context.Context) ([]domain.Scooter, error)
	SearchScooters(ctx context.Context, term string) ([]domain.Scooter, error)
	GetScooter(ctx context.Context, id int32) (*domain.Scooter, error)
	UpdateScooter(ctx context.Context, s *domain.Scooter) error
	UpdateScooterStatus(ctx context.Context, id int32, status domain.ScooterStatus) error
	// AdjustMaintenance moves units in or out of maintenance, bounded by
	// [0, quantity].
	AdjustMaintenance(ctx context.Context, id int32, delta int32) (*domain.Scooter, error)
	// DeleteScooter refuses to remove a scooter with rental history.
	DeleteScooter(ctx context.Context, id int32) error
}

type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
	UpdateClient(ctx context.Context, c *domain.Client) error
	DeleteClient(ctx context.Context, id int32) error
}

// CreateRentalInput is the full rental-creation form: the client block is
// upserted by document id before the rental itself is booked.
type CreateRentalInput struct {
	ScooterID      int32
	ClientFullName string
	ClientDocument string
	ClientPhone    string
	StartDate      string
	EndDate        string
	AmountPaid     float64
	PaymentMethod  domain.PaymentMethod
	HasGuarantee   bool
	DepositAmount  float64
	Notes          string
}

// UpdateRentalInput rewrites the non-status fields of an existing rental.
type UpdateRentalInput struct {
	StartDate     string
	EndDate       string
	AmountPaid    float64
	PaymentMethod domain.PaymentMethod
	HasGuarantee  bool
	DepositAmount float64
	Notes         string
}

type RentalService interface {
	ListRentals(ctx context.Context) ([]domain.RentalWithDetails, error)
	ListActiveRentals(ctx context.Context) ([]domain.RentalWithDetails, error)
	ListCompletedRentals(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error)
	ListLatestRentals(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error)
	GetRental(ctx context.Context, id int32) (*domain.RentalWithDetails, error)
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.RentalWithDetails, error)
	UpdateRental(ctx context.Context, id int32, in UpdateRentalInput) (*domain.RentalWithDetails, error)
	CompleteRental(ctx context.Context, id int32) error
	RevertRental(ctx context.Context, id int32) error
	DeleteRental(ctx context.Context, id int32) error
	// ListOverdueRentals returns active rentals whose end date has passed.
	ListOverdueRentals(ctx context.Context) ([]domain.RentalWithDetails, error)
}

type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, e *domain.Expense) error
	UpdateExpense(ctx context.Context, e *domain.Expense) error
	DeleteExpense(ctx context.Context, id int32) error
}

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	GetAnalytics(ctx context.Context) (*domain.AnalyticsData, error)
}

type EmailService interface {
	SendOverdueSummary(ctx context.Context, rentals []domain.RentalWithDetails) error
}
