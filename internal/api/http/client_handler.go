package http

import (
	"net/http"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
)

type ClientHandler struct {
	clientSvc service.ClientService
	validator *validation.Validator
}

func NewClientHandler(clientSvc service.ClientService, validator *validation.Validator) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc, validator: validator}
}

type clientRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	DocumentID string `json:"document_id" validate:"required,min=3"`
	Phone      string `json:"phone" validate:"required,min=5"`
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	client := &domain.Client{
		FullName:   req.FullName,
		DocumentID: req.DocumentID,
		Phone:      req.Phone,
	}
	if err := h.clientSvc.CreateClient(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeSuccessData(w, "Client created successfully", client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req clientRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	client := &domain.Client{
		ID:         id,
		FullName:   req.FullName,
		DocumentID: req.DocumentID,
		Phone:      req.Phone,
	}
	if err := h.clientSvc.UpdateClient(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Client updated successfully")
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.clientSvc.DeleteClient(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "Client deleted successfully")
}
