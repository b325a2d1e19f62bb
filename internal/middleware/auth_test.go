package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

type stubAuthenticator struct {
	user model.User
	err  error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, _ string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	return s.user, nil
}

func okHandler(t *testing.T, captured **model.User) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			user, _ := UserFromContext(r.Context())
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthenticator{})
	handler := mw.RequireAuth(okHandler(t, nil))

	for _, header := range []string{"", "Basic abc", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/clothes/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthPropagatesTokenErrorMessage(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthenticator{
		err: apierror.New("UNAUTHORIZED", "authentication expired", "", http.StatusUnauthorized),
	})
	handler := mw.RequireAuth(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/clothes/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var parsed model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	require.False(t, parsed.Success)
	require.NotNil(t, parsed.Error)
	require.Equal(t, "authentication expired", parsed.Error.Message)
}

func TestRequireAuthStoresTypedUser(t *testing.T) {
	want := model.User{ID: 9, Email: "admin@example.com", Role: model.RoleAdmin}
	mw := NewAuthMiddleware(&stubAuthenticator{user: want})

	var captured *model.User
	handler := mw.RequireAuth(okHandler(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/clothes/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.Equal(t, want.ID, captured.ID)
	require.Equal(t, want.Role, captured.Role)
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		wantStatus int
	}{
		{name: "admin allowed", role: model.RoleAdmin, wantStatus: http.StatusOK},
		{name: "super admin allowed", role: model.RoleSuperAdmin, wantStatus: http.StatusOK},
		{name: "plain user forbidden", role: model.RoleUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(&stubAuthenticator{user: model.User{ID: 1, Role: tt.role}})
			handler := mw.RequireAuth(mw.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin)(okHandler(t, nil)))

			req := httptest.NewRequest(http.MethodPost, "/clothes/", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRolesWithoutAuthContext(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthenticator{})
	handler := mw.RequireRoles(model.RoleAdmin)(okHandler(t, nil))

	req := httptest.NewRequest(http.MethodGet, "/audit/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
