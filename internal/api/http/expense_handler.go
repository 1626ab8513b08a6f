package http

import (
	"net/http"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
)

type ExpenseHandler struct {
	expenseSvc service.ExpenseService
	validator  *validation.Validator
}

func NewExpenseHandler(expenseSvc service.ExpenseService, validator *validation.Validator) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc, validator: validator}
}

type expenseRequest struct {
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description"`
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, expenses)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	expense := &domain.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.expenseSvc.CreateExpense(r.Context(), expense); err != nil {
		writeError(w, err)
		return
	}
	writeSuccessData(w, "Expense created successfully", expense)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	expense := &domain.Expense{
		ID:          id,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.expenseSvc.UpdateExpense(r.Context(), expense); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Expense updated successfully")
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.expenseSvc.DeleteExpense(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Expense deleted successfully")
}
