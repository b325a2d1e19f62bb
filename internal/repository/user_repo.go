package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user and returns the stored row, including the
// server-assigned id, timestamps and default role.
func (r *UserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	var created model.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password_hash, full_name, phone, role, created_at, last_modified_at`,
		strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.FullName, u.Phone).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.FullName,
			&created.Phone, &created.Role, &created.CreatedAt, &created.LastModifiedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return model.User{}, model.ErrEmailTaken
	}
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, phone, role, created_at, last_modified_at
		 FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Role,
			&u.CreatedAt, &u.LastModifiedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, phone, role, created_at, last_modified_at
		 FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email)).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Role,
			&u.CreatedAt, &u.LastModifiedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role model.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $2, last_modified_at = now() WHERE id = $1`,
		id, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
