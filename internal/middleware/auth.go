package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

type authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (model.User, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	auth authenticator
}

func NewAuthMiddleware(auth authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth verifies the bearer token, resolves the user and stores it as
// a typed context value for downstream handlers.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		token := strings.TrimSpace(header[7:])
		user, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			message := "invalid credentials"

			var apiErr *apierror.APIError
			if errors.As(err, &apiErr) {
				status = apiErr.HTTPStatus
				message = apiErr.Message
			}

			writeAuthError(w, status, "UNAUTHORIZED", message)
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles rejects with 403 when the authenticated user's role is not in
// the allowed set. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(allowedRoles ...model.Role) func(http.Handler) http.Handler {
	roleSet := map[model.Role]struct{}{}
	for _, role := range allowedRoles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				return
			}

			if _, allowed := roleSet[user.Role]; !allowed {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "you do not have permission")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user placed by RequireAuth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(authUserContextKey).(*model.User)
	return user, ok
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
