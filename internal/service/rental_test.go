package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scooter-backoffice/internal/domain"
)

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesTotalAndPaymentStatus", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		scooterRepo := new(MockScooterRepo)
		clientRepo := new(MockClientRepo)
		svc := NewRentalService(rentalRepo, scooterRepo, clientRepo)

		scooterRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Scooter{ID: 1, Name: "City Cruiser", Price: 100}, nil)

		clientRepo.On("UpsertByDocumentID", ctx, mock.AnythingOfType("*domain.Client")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Client).ID = 3
			}).Return(nil)

		rentalRepo.On("CreateActive", ctx, mock.MatchedBy(func(r *domain.Rental) bool {
			// 100/day, June 1 through June 5 inclusive = 500
			return r.TotalPrice == 500 &&
				r.AmountPaid == 500 &&
				r.PaymentStatus == domain.PaymentStatusPaid &&
				r.ClientID == 3
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rental).ID = 10
		}).Return(nil)

		rentalRepo.On("GetByID", ctx, int32(10)).
			Return(&domain.RentalWithDetails{Rental: domain.Rental{ID: 10, TotalPrice: 500}}, nil)

		created, err := svc.CreateRental(ctx, CreateRentalInput{
			ScooterID:      1,
			ClientFullName: "Maria Lopez",
			ClientDocument: "X-1234",
			ClientPhone:    "555-0101",
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-05",
			AmountPaid:     500,
			PaymentMethod:  domain.PaymentMethodCash,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(10), created.ID)
		rentalRepo.AssertExpectations(t)
		clientRepo.AssertExpectations(t)
	})

	t.Run("RejectsInvertedDateRange", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		scooterRepo := new(MockScooterRepo)
		clientRepo := new(MockClientRepo)
		svc := NewRentalService(rentalRepo, scooterRepo, clientRepo)

		scooterRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Scooter{ID: 1, Price: 100}, nil)

		_, err := svc.CreateRental(ctx, CreateRentalInput{
			ScooterID:      1,
			ClientFullName: "Maria Lopez",
			ClientDocument: "X-1234",
			ClientPhone:    "555-0101",
			StartDate:      "2025-06-05",
			EndDate:        "2025-06-01",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		clientRepo.AssertNotCalled(t, "UpsertByDocumentID")
		rentalRepo.AssertNotCalled(t, "CreateActive")
	})

	t.Run("PropagatesUnavailableScooter", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		scooterRepo := new(MockScooterRepo)
		clientRepo := new(MockClientRepo)
		svc := NewRentalService(rentalRepo, scooterRepo, clientRepo)

		scooterRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Scooter{ID: 1, Price: 100}, nil)
		clientRepo.On("UpsertByDocumentID", ctx, mock.Anything).Return(nil)
		rentalRepo.On("CreateActive", ctx, mock.Anything).Return(domain.ErrScooterUnavailable)

		_, err := svc.CreateRental(ctx, CreateRentalInput{
			ScooterID:      1,
			ClientFullName: "Maria Lopez",
			ClientDocument: "X-1234",
			ClientPhone:    "555-0101",
			StartDate:      "2025-06-01",
			EndDate:        "2025-06-02",
		})
		assert.ErrorIs(t, err, domain.ErrScooterUnavailable)
	})
}

func TestRentalService_UpdateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesPriceFromNewDates", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		scooterRepo := new(MockScooterRepo)
		clientRepo := new(MockClientRepo)
		svc := NewRentalService(rentalRepo, scooterRepo, clientRepo)

		existing := &domain.RentalWithDetails{Rental: domain.Rental{
			ID: 10, ScooterID: 1, ClientID: 3,
			StartDate: "2025-06-01", EndDate: "2025-06-05",
			TotalPrice: 500, AmountPaid: 500, PaymentStatus: domain.PaymentStatusPaid,
		}}
		rentalRepo.On("GetByID", ctx, int32(10)).Return(existing, nil).Once()
		scooterRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Scooter{ID: 1, Price: 100}, nil)

		// Shortened to two days: total drops to 200, paid 500 still covers it.
		rentalRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Rental) bool {
			return r.TotalPrice == 200 && r.PaymentStatus == domain.PaymentStatusPaid
		})).Return(nil)
		rentalRepo.On("GetByID", ctx, int32(10)).
			Return(&domain.RentalWithDetails{Rental: domain.Rental{ID: 10, TotalPrice: 200}}, nil)

		updated, err := svc.UpdateRental(ctx, 10, UpdateRentalInput{
			StartDate:     "2025-06-01",
			EndDate:       "2025-06-02",
			AmountPaid:    500,
			PaymentMethod: domain.PaymentMethodCard,
		})
		assert.NoError(t, err)
		assert.Equal(t, 200.0, updated.TotalPrice)
		rentalRepo.AssertExpectations(t)
	})

	t.Run("PartialPaymentDowngradesStatus", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		scooterRepo := new(MockScooterRepo)
		clientRepo := new(MockClientRepo)
		svc := NewRentalService(rentalRepo, scooterRepo, clientRepo)

		existing := &domain.RentalWithDetails{Rental: domain.Rental{
			ID: 10, ScooterID: 1, ClientID: 3,
			StartDate: "2025-06-01", EndDate: "2025-06-05",
			TotalPrice: 500, AmountPaid: 500, PaymentStatus: domain.PaymentStatusPaid,
		}}
		rentalRepo.On("GetByID", ctx, int32(10)).Return(existing, nil).Once()
		scooterRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Scooter{ID: 1, Price: 100}, nil)

		rentalRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Rental) bool {
			return r.TotalPrice == 500 && r.PaymentStatus == domain.PaymentStatusPartial
		})).Return(nil)
		rentalRepo.On("GetByID", ctx, int32(10)).Return(existing, nil)

		_, err := svc.UpdateRental(ctx, 10, UpdateRentalInput{
			StartDate:     "2025-06-01",
			EndDate:       "2025-06-05",
			AmountPaid:    100,
			PaymentMethod: domain.PaymentMethodCash,
		})
		assert.NoError(t, err)
		rentalRepo.AssertExpectations(t)
	})
}

func TestRentalService_ListOverdueRentals(t *testing.T) {
	ctx := context.Background()

	rentalRepo := new(MockRentalRepo)
	svc := &rentalService{
		rentalRepo: rentalRepo,
		now: func() time.Time {
			return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		},
	}

	rentalRepo.On("ListActive", ctx).Return([]domain.RentalWithDetails{
		{Rental: domain.Rental{ID: 1, EndDate: "2025-06-09"}},
		{Rental: domain.Rental{ID: 2, EndDate: "2025-06-10"}},
		{Rental: domain.Rental{ID: 3, EndDate: "2025-06-11"}},
	}, nil)

	overdue, err := svc.ListOverdueRentals(ctx)
	assert.NoError(t, err)
	// Only the rental that ended before today counts; ending today is fine.
	assert.Len(t, overdue, 1)
	assert.Equal(t, int32(1), overdue[0].ID)
}

func TestRentalService_ListCompletedRentals(t *testing.T) {
	ctx := context.Background()

	rentalRepo := new(MockRentalRepo)
	svc := NewRentalService(rentalRepo, new(MockScooterRepo), new(MockClientRepo))

	rentalRepo.On("ListCompleted", ctx, int32(20)).Return([]domain.RentalWithDetails{}, nil)

	_, err := svc.ListCompletedRentals(ctx, 0)
	assert.NoError(t, err)
	rentalRepo.AssertExpectations(t)
}
