package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scooter-backoffice/internal/domain"
)

// MockScooterRepo
type MockScooterRepo struct {
	mock.Mock
}

func (m *MockScooterRepo) Create(ctx context.Context, s *domain.Scooter) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockScooterRepo) GetByID(ctx context.Context, id int32) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}
func (m *MockScooterRepo) List(ctx context.Context) ([]domain.Scooter, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Scooter), args.Error(1)
}
func (m *MockScooterRepo) Search(ctx context.Context, term string) ([]domain.Scooter, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Scooter), args.Error(1)
}
func (m *MockScooterRepo) Update(ctx context.Context, s *domain.Scooter) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockScooterRepo) UpdateStatus(ctx context.Context, id int32, status domain.ScooterStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockScooterRepo) SetMaintenanceCount(ctx context.Context, id int32, count int32) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}
func (m *MockScooterRepo) CountRentals(ctx context.Context, id int32) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockScooterRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) UpsertByDocumentID(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateActive(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.RentalWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalWithDetails), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) Complete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) Revert(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.RentalWithDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalWithDetails), args.Error(1)
}
func (m *MockRentalRepo) ListActive(ctx context.Context) ([]domain.RentalWithDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalWithDetails), args.Error(1)
}
func (m *MockRentalRepo) ListCompleted(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentalWithDetails), args.Error(1)
}
func (m *MockRentalRepo) ListLatest(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentalWithDetails), args.Error(1)
}

// MockExpenseRepo
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) List(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseRepo) GetByID(ctx context.Context, id int32) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExpenseRepo) Update(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExpenseRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockStatsRepo) GetMonthlyStats(ctx context.Context) ([]domain.MonthlyStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MonthlyStat), args.Error(1)
}
func (m *MockStatsRepo) GetTopScooters(ctx context.Context, limit int32) ([]domain.TopScooter, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.TopScooter), args.Error(1)
}

// MockAdminUserRepo
type MockAdminUserRepo struct {
	mock.Mock
}

func (m *MockAdminUserRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}
func (m *MockAdminUserRepo) Create(ctx context.Context, user *domain.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockAdminUserRepo) SetPassword(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}
