package service

import (
	"context"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
)

type ClothingStore interface {
	List(ctx context.Context) ([]model.ClothingItem, error)
	Create(ctx context.Context, item model.ClothingItem) (model.ClothingItem, error)
}

type CatalogService struct {
	clothes ClothingStore
}

func NewCatalogService(clothes ClothingStore) *CatalogService {
	return &CatalogService{clothes: clothes}
}

// List returns the entire catalog, unfiltered and unpaginated.
func (s *CatalogService) List(ctx context.Context) ([]model.ClothingItem, error) {
	return s.clothes.List(ctx)
}

func (s *CatalogService) Create(ctx context.Context, req model.CreateClothingRequest) (model.ClothingItem, error) {
	return s.clothes.Create(ctx, model.ClothingItem{
		Name:     req.Name,
		Color:    model.ClothingColor(req.Color),
		Size:     model.ClothingSize(req.Size),
		PhotoURL: req.PhotoURL,
	})
}
