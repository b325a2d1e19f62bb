package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/config"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/handler"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/middleware"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/model"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Audit   *handler.AuditHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/register/", handlers.Auth.Register)
	r.Post("/login/", handlers.Auth.Login)

	r.With(authMiddleware.RequireAuth).Get("/clothes/", handlers.Catalog.List)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin)).
		Post("/clothes/", handlers.Catalog.Create)
	r.With(authMiddleware.RequireAuth, authMiddleware.RequireRoles(model.RoleAdmin, model.RoleSuperAdmin)).
		Get("/audit/", handlers.Audit.List)

	return r
}
