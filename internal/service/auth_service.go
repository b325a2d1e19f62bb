package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

const bcryptCost = 12

type UserStore interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(jwtSecret string, tokenTTL time.Duration, users UserStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	return &AuthService{
		users:    users,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}, nil
}

// Register hashes the password, persists the user with the default role and
// returns the stored row together with a fresh access token. The insert and
// the re-read happen in one round trip (INSERT ... RETURNING); if token
// issuance fails afterwards the row stays valid and the user can log in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
	})
	if err != nil {
		return model.User{}, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return "", apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	return s.IssueToken(user.ID)
}

// IssueToken signs an HS256 access token whose subject is the user id.
func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature and expiry. Expiry surfaces as
// "authentication expired"; every other defect as "invalid credentials".
func (s *AuthService) VerifyToken(tokenString string) (*model.AccessClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return s.now() }))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, apierror.New("UNAUTHORIZED", "authentication expired", "", http.StatusUnauthorized)
	}
	if err != nil || !parsed.Valid {
		return nil, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	out := &model.AccessClaims{UserID: userID, TokenID: claims.ID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Authenticate resolves a bearer token to its user. A verified token whose
// subject no longer exists fails closed as invalid credentials.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	claims, err := s.VerifyToken(tokenString)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}
