package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
)

type ClothingRepository struct {
	pool *pgxpool.Pool
}

func NewClothingRepository(pool *pgxpool.Pool) *ClothingRepository {
	return &ClothingRepository{pool: pool}
}

// List returns the full catalog in storage order.
func (r *ClothingRepository) List(ctx context.Context) ([]model.ClothingItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, color, size, photo_url, created_at, last_modified_at
		 FROM clothes`)
	if err != nil {
		return nil, fmt.Errorf("list clothes: %w", err)
	}
	defer rows.Close()

	items := make([]model.ClothingItem, 0)
	for rows.Next() {
		var item model.ClothingItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Color, &item.Size,
			&item.PhotoURL, &item.CreatedAt, &item.LastModifiedAt); err != nil {
			return nil, fmt.Errorf("scan clothing item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ClothingRepository) Create(ctx context.Context, item model.ClothingItem) (model.ClothingItem, error) {
	var created model.ClothingItem
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clothes (name, color, size, photo_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, color, size, photo_url, created_at, last_modified_at`,
		item.Name, item.Color, item.Size, item.PhotoURL).
		Scan(&created.ID, &created.Name, &created.Color, &created.Size,
			&created.PhotoURL, &created.CreatedAt, &created.LastModifiedAt)
	if err != nil {
		return model.ClothingItem{}, fmt.Errorf("create clothing item: %w", err)
	}
	return created, nil
}

func (r *ClothingRepository) FindByID(ctx context.Context, id int64) (model.ClothingItem, error) {
	var item model.ClothingItem
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, color, size, photo_url, created_at, last_modified_at
		 FROM clothes WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Color, &item.Size,
			&item.PhotoURL, &item.CreatedAt, &item.LastModifiedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ClothingItem{}, model.ErrClothingNotFound
	}
	if err != nil {
		return model.ClothingItem{}, fmt.Errorf("find clothing item: %w", err)
	}
	return item, nil
}
