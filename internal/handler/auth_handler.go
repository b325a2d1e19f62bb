package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/service"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/validation"
	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

type authService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, string, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

type AuthHandler struct {
	service   authService
	validator *validation.Validator
	audit     *service.AuditService
}

func NewAuthHandler(service authService, validator *validation.Validator, audit *service.AuditService) *AuthHandler {
	return &AuthHandler{service: service, validator: validator, audit: audit}
}

// Register creates the user and answers with a fresh access token bound to
// the new user id.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.validator.Check(payload); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.service.Register(r.Context(), payload)
	if err != nil {
		h.audit.Record(r.Context(), "user.register", nil, clientIP(r), payload.Email, "failure")
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), "user.register", &user, clientIP(r), user.Email, "success")
	writeSuccess(w, http.StatusCreated, model.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.validator.Check(payload); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.audit.Record(r.Context(), "user.login", nil, clientIP(r), payload.Email, "failure")
		writeError(w, err)
		return
	}

	h.audit.Record(r.Context(), "user.login", nil, clientIP(r), payload.Email, "success")
	writeSuccess(w, http.StatusOK, model.TokenResponse{Token: token})
}
