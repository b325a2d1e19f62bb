package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/middleware"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/service"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/validation"
	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

type catalogService interface {
	List(ctx context.Context) ([]model.ClothingItem, error)
	Create(ctx context.Context, req model.CreateClothingRequest) (model.ClothingItem, error)
}

type CatalogHandler struct {
	service   catalogService
	validator *validation.Validator
	audit     *service.AuditService
}

func NewCatalogHandler(service catalogService, validator *validation.Validator, audit *service.AuditService) *CatalogHandler {
	return &CatalogHandler{service: service, validator: validator, audit: audit}
}

// List returns the full catalog to any authenticated user.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, items)
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateClothingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.validator.Check(payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	actor, _ := middleware.UserFromContext(r.Context())
	h.audit.Record(r.Context(), "clothing.create", actor, clientIP(r), fmt.Sprintf("clothes/%d", item.ID), "success")

	writeSuccess(w, http.StatusCreated, item)
}
