package service

import (
	"context"
	"fmt"
	"time"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/logger"
	"scooter-backoffice/internal/pricing"
	"scooter-backoffice/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	scooterRepo repository.ScooterRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	scooterRepo repository.ScooterRepository,
	clientRepo repository.ClientRepository,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		scooterRepo: scooterRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.RentalWithDetails, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.RentalWithDetails, error) {
	return s.rentalRepo.ListActive(ctx)
}

func (s *rentalService) ListCompletedRentals(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.rentalRepo.ListCompleted(ctx, limit)
}

func (s *rentalService) ListLatestRentals(ctx context.Context, limit int32) ([]domain.RentalWithDetails, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.rentalRepo.ListLatest(ctx, limit)
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.RentalWithDetails, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.RentalWithDetails, error) {
	scooter, err := s.scooterRepo.GetByID(ctx, in.ScooterID)
	if err != nil {
		return nil, err
	}

	totalPrice, err := pricing.TotalPrice(scooter.Price, in.StartDate, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Upsert the client by document id: a returning client keeps their row,
	// contact fields are overwritten with the submitted values.
	client := &domain.Client{
		FullName:   in.ClientFullName,
		DocumentID: in.ClientDocument,
		Phone:      in.ClientPhone,
	}
	if err := s.clientRepo.UpsertByDocumentID(ctx, client); err != nil {
		return nil, fmt.Errorf("upsert client: %w", err)
	}

	rental := &domain.Rental{
		ScooterID:     in.ScooterID,
		ClientID:      client.ID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		TotalPrice:    totalPrice,
		AmountPaid:    in.AmountPaid,
		PaymentStatus: pricing.DerivePaymentStatus(in.AmountPaid, totalPrice),
		PaymentMethod: in.PaymentMethod,
		HasGuarantee:  in.HasGuarantee,
		DepositAmount: in.DepositAmount,
		Notes:         in.Notes,
	}

	if err := s.rentalRepo.CreateActive(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "scooter_id", rental.ScooterID,
		"client_id", rental.ClientID, "total_price", rental.TotalPrice)

	return s.rentalRepo.GetByID(ctx, rental.ID)
}

func (s *rentalService) UpdateRental(ctx context.Context, id int32, in UpdateRentalInput) (*domain.RentalWithDetails, error) {
	existing, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scooter, err := s.scooterRepo.GetByID(ctx, existing.ScooterID)
	if err != nil {
		return nil, err
	}

	// The total is always recomputed from the dates and the daily rate, and
	// payment status from the two amounts; neither is caller-editable.
	totalPrice, err := pricing.TotalPrice(scooter.Price, in.StartDate, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	rental := existing.Rental
	rental.StartDate = in.StartDate
	rental.EndDate = in.EndDate
	rental.TotalPrice = totalPrice
	rental.AmountPaid = in.AmountPaid
	rental.PaymentStatus = pricing.DerivePaymentStatus(in.AmountPaid, totalPrice)
	rental.PaymentMethod = in.PaymentMethod
	rental.HasGuarantee = in.HasGuarantee
	rental.DepositAmount = in.DepositAmount
	rental.Notes = in.Notes

	if err := s.rentalRepo.Update(ctx, &rental); err != nil {
		return nil, err
	}

	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) CompleteRental(ctx context.Context, id int32) error {
	if err := s.rentalRepo.Complete(ctx, id); err != nil {
		return err
	}
	logger.Info("Rental completed", "rental_id", id)
	return nil
}

func (s *rentalService) RevertRental(ctx context.Context, id int32) error {
	if err := s.rentalRepo.Revert(ctx, id); err != nil {
		return err
	}
	logger.Info("Rental reverted to active", "rental_id", id)
	return nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("Rental deleted", "rental_id", id)
	return nil
}

func (s *rentalService) ListOverdueRentals(ctx context.Context) ([]domain.RentalWithDetails, error) {
	active, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	var overdue []domain.RentalWithDetails
	for _, rt := range active {
		end, err := pricing.ParseDate(rt.EndDate)
		if err != nil {
			logger.Warn("Rental has unparseable end date", "rental_id", rt.ID, "end_date", rt.EndDate)
			continue
		}
		if pricing.IsOverdue(end, today) {
			overdue = append(overdue, rt)
		}
	}
	return overdue, nil
}
