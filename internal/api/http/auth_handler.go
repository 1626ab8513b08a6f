package http

import (
	"net/http"

	"scooter-backoffice/internal/service"
	"scooter-backoffice/internal/validation"
)

type AuthHandler struct {
	authSvc   service.AuthService
	validator *validation.Validator
}

func NewAuthHandler(authSvc service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, validator: validator}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.Validate(req); err != nil {
		writeValidationError(w, validation.FieldErrors(err))
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessData(w, "Login successful", loginResponse{Token: token, Username: user.Username})
}
