package service

import (
	"context"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) CreateClient(ctx context.Context, c *domain.Client) error {
	return s.clientRepo.Create(ctx, c)
}

func (s *clientService) UpdateClient(ctx context.Context, c *domain.Client) error {
	return s.clientRepo.Update(ctx, c)
}

func (s *clientService) DeleteClient(ctx context.Context, id int32) error {
	return s.clientRepo.Delete(ctx, id)
}
