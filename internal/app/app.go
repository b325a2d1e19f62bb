package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/config"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/database"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/handler"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/middleware"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/repository"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/router"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/service"
	"github.com/mozart-martins/fastapi-ivanova-clothes/internal/validation"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	clothingRepo := repository.NewClothingRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	slog.Info("database ready")

	authService, err := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL, userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	catalogService := service.NewCatalogService(clothingRepo)
	auditService := service.NewAuditService(auditRepo)

	validator := validation.New()
	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:    handler.NewAuthHandler(authService, validator, auditService),
		Catalog: handler.NewCatalogHandler(catalogService, validator, auditService),
		Audit:   handler.NewAuditHandler(auditService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.db.Close()
	slog.Info("server stopped")
	return nil
}
