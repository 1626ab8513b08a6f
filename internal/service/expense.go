package service

import (
	"context"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func (s *expenseService) CreateExpense(ctx context.Context, e *domain.Expense) error {
	return s.expenseRepo.Create(ctx, e)
}

func (s *expenseService) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	return s.expenseRepo.Update(ctx, e)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id int32) error {
	return s.expenseRepo.Delete(ctx, id)
}
