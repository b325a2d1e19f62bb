//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/config"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/database"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/handler"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/middleware"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/repository"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/router"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/service"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/validation"
)

type testEnv struct {
	server  *httptest.Server
	users   *repository.UserRepository
	authSvc *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	databaseURL := strings.TrimSpace(os.Getenv("TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE audit_entries, clothes, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		DatabaseURL:      databaseURL,
		JWTSecret:        "integration-secret",
		TokenTTL:         120 * time.Minute,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
	}

	userRepo := repository.NewUserRepository(db.Pool)
	clothingRepo := repository.NewClothingRepository(db.Pool)
	auditRepo := repository.NewAuditRepository(db.Pool)

	authService, err := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL, userRepo)
	require.NoError(t, err)
	catalogService := service.NewCatalogService(clothingRepo)
	auditService := service.NewAuditService(auditRepo)

	validator := validation.New()
	appRouter := router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Auth:    handler.NewAuthHandler(authService, validator, auditService),
		Catalog: handler.NewCatalogHandler(catalogService, validator, auditService),
		Audit:   handler.NewAuditHandler(auditService),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)

	return &testEnv{server: server, users: userRepo, authSvc: authService}
}

func (e *testEnv) register(t *testing.T, email string, fullName string, password string) (int, string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"email":     email,
		"full_name": fullName,
		"password":  password,
	})
	require.NoError(t, err)

	resp, err := http.Post(e.server.URL+"/register/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp.StatusCode, parsed.Data.Token
}

func (e *testEnv) get(t *testing.T, path string, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) postJSON(t *testing.T, path string, token string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterAndListClothes(t *testing.T) {
	env := newTestEnv(t)

	status, token := env.register(t, "alice@example.com", "Alice Smith", "hunter22")
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, token)

	claims, err := env.authSvc.VerifyToken(token)
	require.NoError(t, err)

	user, err := env.users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, model.RoleUser, user.Role)
	require.False(t, user.CreatedAt.IsZero())

	t.Run("without token", func(t *testing.T) {
		resp := env.get(t, "/clothes/", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with token", func(t *testing.T) {
		resp := env.get(t, "/clothes/", token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Data []model.ClothingItem `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		require.Empty(t, parsed.Data)
	})

	t.Run("tampered token", func(t *testing.T) {
		resp := env.get(t, "/clothes/", token+"x")
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.register(t, "bob@example.com", "Bob Jones", "secret1")
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.register(t, "bob@example.com", "Bobby Jones", "secret2")
	require.Equal(t, http.StatusConflict, status)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.register(t, "carol@example.com", "Carol", "secret1")
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = env.register(t, "not-an-email", "Carol Danvers", "secret1")
	require.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCatalogWriteRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, token := env.register(t, "dave@example.com", "Dave Grohl", "drumsticks")
	item := map[string]string{"name": "T-shirt", "color": "black", "size": "m"}

	resp := env.postJSON(t, "/clothes/", token, item)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	user, err := env.users.FindByEmail(ctx, "dave@example.com")
	require.NoError(t, err)
	require.NoError(t, env.users.UpdateRole(ctx, user.ID, model.RoleAdmin))

	adminResp := env.postJSON(t, "/clothes/", token, item)
	defer adminResp.Body.Close()
	require.Equal(t, http.StatusCreated, adminResp.StatusCode)

	listResp := env.get(t, "/clothes/", token)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var parsed struct {
		Data []model.ClothingItem `json:"data"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&parsed))
	require.Len(t, parsed.Data, 1)
	require.Equal(t, "T-shirt", parsed.Data[0].Name)

	auditResp := env.get(t, "/audit/", token)
	defer auditResp.Body.Close()
	require.Equal(t, http.StatusOK, auditResp.StatusCode)

	var audit struct {
		Data []model.AuditEntry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(auditResp.Body).Decode(&audit))
	require.NotEmpty(t, audit.Data)

	actions := make([]string, 0, len(audit.Data))
	for _, entry := range audit.Data {
		actions = append(actions, entry.Action)
	}
	require.Contains(t, actions, "user.register")
	require.Contains(t, actions, "clothing.create")
}
