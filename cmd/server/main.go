// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nwssu/gymadmin/internal/auth/repository"
	authRouter "github.com/nwssu/gymadmin/internal/auth/router"
	"github.com/nwssu/gymadmin/internal/config"
	dashboardRouter "github.com/nwssu/gymadmin/internal/dashboard/router"
	"github.com/nwssu/gymadmin/internal/database/database"
	"github.com/nwssu/gymadmin/internal/database/migrate"
	"github.com/nwssu/gymadmin/internal/health"
	memberRouter "github.com/nwssu/gymadmin/internal/member/router"
	"github.com/nwssu/gymadmin/internal/middleware"
	pricingRepo "github.com/nwssu/gymadmin/internal/pricing/repository"
	statisticsRouter "github.com/nwssu/gymadmin/internal/statistics/router"
	"github.com/nwssu/gymadmin/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zlog.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zlog.Fatalw("failed to apply migrations", "error", err)
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSeed()
	if err := pricingRepo.New(db, zlog).SeedDefaults(seedCtx); err != nil {
		zlog.Fatalw("failed to seed default pricing", "error", err)
	}
	adminUser := config.GetEnv("ADMIN_USERNAME", "admin")
	adminPass := config.GetEnv("ADMIN_PASSWORD", "admin123")
	if err := repository.New(db, zlog).SeedDefault(seedCtx, adminUser, adminPass); err != nil {
		zlog.Fatalw("failed to seed default admin", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))

	loc := cfg.Location()

	r.GET("/health", health.New(db, zlog).Check)
	authRouter.RegisterRoutes(r, db, zlog)
	memberRouter.RegisterRoutes(r, db, zlog, loc)
	dashboardRouter.RegisterRoutes(r, db, zlog, loc)
	statisticsRouter.RegisterRoutes(r, db, zlog, loc)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Infow("server starting", "address", srv.Addr, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("graceful shutdown failed", "error", err)
	}
}
