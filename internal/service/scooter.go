package service

import (
	"context"
	"fmt"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type scooterService struct {
	scooterRepo repository.ScooterRepository
}

func NewScooterService(scooterRepo repository.ScooterRepository) ScooterService {
	return &scooterService{scooterRepo: scooterRepo}
}

func (s *scooterService) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	return s.scooterRepo.List(ctx)
}

func (s *scooterService) SearchScooters(ctx context.Context, term string) ([]domain.Scooter, error) {
	return s.scooterRepo.Search(ctx, term)
}

func (s *scooterService) GetScooter(ctx context.Context, id int32) (*domain.Scooter, error) {
	return s.scooterRepo.GetByID(ctx, id)
}

func (s *scooterService) UpdateScooter(ctx context.Context, sc *domain.Scooter) error {
	existing, err := s.scooterRepo.GetByID(ctx, sc.ID)
	if err != nil {
		return err
	}
	if sc.Quantity < existing.MaintenanceCount {
		return fmt.Errorf("%w: quantity cannot drop below units in maintenance", domain.ErrScooterUnavailable)
	}
	return s.scooterRepo.Update(ctx, sc)
}

func (s *scooterService) UpdateScooterStatus(ctx context.Context, id int32, status domain.ScooterStatus) error {
	return s.scooterRepo.UpdateStatus(ctx, id, status)
}

func (s *scooterService) AdjustMaintenance(ctx context.Context, id int32, delta int32) (*domain.Scooter, error) {
	sc, err := s.scooterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count := sc.MaintenanceCount + delta
	if count < 0 {
		count = 0
	}
	if count > sc.Quantity {
		count = sc.Quantity
	}
	if err := s.scooterRepo.SetMaintenanceCount(ctx, id, count); err != nil {
		return nil, err
	}

	return s.scooterRepo.GetByID(ctx, id)
}

func (s *scooterService) DeleteScooter(ctx context.Context, id int32) error {
	count, err := s.scooterRepo.CountRentals(ctx, id)
	if err != nil {
		return fmt.Errorf("count rentals: %w", err)
	}
	if count > 0 {
		return domain.ErrScooterHasRentals
	}
	return s.scooterRepo.Delete(ctx, id)
}
