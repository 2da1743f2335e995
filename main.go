package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/signup-api/internal/config"
	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/factory"
	"github.com/msomdec/signup-api/internal/handler"
	"github.com/msomdec/signup-api/internal/repository/mysql"
	"github.com/msomdec/signup-api/internal/repository/sqlite"
	"github.com/msomdec/signup-api/internal/service"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := openDatabase(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.Driver)

	deps := factory.Deps{
		Accounts:   db.Accounts(),
		Logs:       db.Logs(),
		BcryptCost: cfg.BcryptCost,
		JWTSecret:  cfg.JWTSecret,
	}

	// 5 attempts per client IP, refilling one every 12 seconds.
	limiter := service.NewTokenBucket(1.0/12, 5)
	defer limiter.Close()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, factory.MakeSignUpController(deps), factory.MakeLoginController(deps), limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestID(handler.SecurityHeaders(handler.CORS(cfg.CORSOrigin, mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, cfg *config.Config) (domain.Database, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.DatabasePath)
	case config.DriverMySQL:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return mysql.New(connectCtx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}
