package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
)

type ScooterHandler struct {
	scooterSvc service.ScooterService
	validator  *validation.Validator
}

func NewScooterHandler(scooterSvc service.ScooterService, validator *validation.Validator) *ScooterHandler {
	return &ScooterHandler{scooterSvc: scooterSvc, validator: validator}
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, ActionState{Success: false, Message: "Invalid id"})
		return 0, false
	}
	return int32(id), true
}

func (h *ScooterHandler) List(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		scooters, err := h.scooterSvc.SearchScooters(r.Context(), term)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, scooters)
		return
	}

	scooters, err := h.scooterSvc.ListScooters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, scooters)
}

func (h *ScooterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	scooter, err := h.scooterSvc.GetScooter(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, scooter)
}

type updateScooterRequest struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name" validate:"required,min=2"`
	Image           string  `json:"image"`
	Engine          string  `json:"engine"`
	Speed           string  `json:"speed"`
	Price           float64 `json:"price" validate:"gte=0"`
	Status          string  `json:"status" validate:"required,oneof=available rented maintenance"`
	Plate           string  `json:"plate" validate:"required"`
	Quantity        int32   `json:"quantity" validate:"gte=1"`
	LastMaintenance string  `json:"last_maintenance" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ScooterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateScooterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	scooter := &domain.Scooter{
		ID:              id,
		Slug:            req.Slug,
		Name:            req.Name,
		Image:           req.Image,
		Engine:          req.Engine,
		Speed:           req.Speed,
		Price:           req.Price,
		Status:          domain.ScooterStatus(req.Status),
		Plate:           req.Plate,
		Quantity:        req.Quantity,
		LastMaintenance: req.LastMaintenance,
	}
	if err := h.scooterSvc.UpdateScooter(r.Context(), scooter); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Scooter updated successfully")
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available rented maintenance"`
}

func (h *ScooterHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	if err := h.scooterSvc.UpdateScooterStatus(r.Context(), id, domain.ScooterStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Status updated successfully")
}

type adjustMaintenanceRequest struct {
	Delta int32 `json:"delta" validate:"required"`
}

func (h *ScooterHandler) AdjustMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req adjustMaintenanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	scooter, err := h.scooterSvc.AdjustMaintenance(r.Context(), id, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessData(w, "Maintenance count updated", scooter)
}

func (h *ScooterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.scooterSvc.DeleteScooter(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Scooter deleted successfully")
}
