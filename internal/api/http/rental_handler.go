package http

import (
	"net/http"
	"strconv"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	validator *validation.Validator
}

func NewRentalHandler(rentalSvc service.RentalService, validator *validation.Validator) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, validator: validator}
}

type createRentalRequest struct {
	ScooterID      int32   `json:"scooter_id" validate:"required,gt=0"`
	ClientFullName string  `json:"client_full_name" validate:"required,min=2"`
	ClientDocument string  `json:"client_document" validate:"required,min=3"`
	ClientPhone    string  `json:"client_phone" validate:"required,min=5"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	AmountPaid     float64 `json:"amount_paid" validate:"gte=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required,oneof=cash card transfer"`
	HasGuarantee   bool    `json:"has_guarantee"`
	DepositAmount  float64 `json:"deposit_amount" validate:"gte=0"`
	Notes          string  `json:"notes"`
}

type updateRentalRequest struct {
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	AmountPaid    float64 `json:"amount_paid" validate:"gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash card transfer"`
	HasGuarantee  bool    `json:"has_guarantee"`
	DepositAmount float64 `json:"deposit_amount" validate:"gte=0"`
	Notes         string  `json:"notes"`
}

// List serves /api/rentals. The status query parameter narrows the result to
// active or completed rentals; latest=n returns the n most recent.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("latest"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit <= 0 {
			writeJSON(w, http.StatusBadRequest, ActionState{Success: false, Message: "Invalid latest parameter"})
			return
		}
		rentals, err := h.rentalSvc.ListLatestRentals(r.Context(), int32(limit))
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, rentals)
		return
	}

	var (
		rentals []domain.RentalWithDetails
		err     error
	)
	switch query.Get("status") {
	case "":
		rentals, err = h.rentalSvc.ListRentals(r.Context())
	case "active":
		rentals, err = h.rentalSvc.ListActiveRentals(r.Context())
	case "completed":
		var limit int64
		if raw := query.Get("limit"); raw != "" {
			limit, _ = strconv.ParseInt(raw, 10, 32)
		}
		rentals, err = h.rentalSvc.ListCompletedRentals(r.Context(), int32(limit))
	default:
		writeJSON(w, http.StatusBadRequest, ActionState{Success: false, Message: "Invalid status filter"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rentals)
}

func (h *RentalHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListOverdueRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rental)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), service.CreateRentalInput{
		ScooterID:      req.ScooterID,
		ClientFullName: req.ClientFullName,
		ClientDocument: req.ClientDocument,
		ClientPhone:    req.ClientPhone,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		AmountPaid:     req.AmountPaid,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		HasGuarantee:   req.HasGuarantee,
		DepositAmount:  req.DepositAmount,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessData(w, "Rental created successfully", rental)
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	rental, err := h.rentalSvc.UpdateRental(r.Context(), id, service.UpdateRentalInput{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		HasGuarantee:  req.HasGuarantee,
		DepositAmount: req.DepositAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessData(w, "Rental updated successfully", rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rentalSvc.CompleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Rental completed successfully")
}

func (h *RentalHandler) Revert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rentalSvc.RevertRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Rental reverted to active")
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Rental deleted successfully")
}
