package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"learning_backend/internal/app/di"
	"learning_backend/internal/app/router"
	"learning_backend/internal/config"
	"learning_backend/internal/platform/db"
	jwtmw "learning_backend/internal/platform/jwt"
	infraredis "learning_backend/internal/platform/redis"
	"learning_backend/internal/shared/ratelimiter"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	startedAt := time.Now()

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	sdb, err := db.NewSQLX(gdb, "pgx")
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err, "addr", cfg.Redis.Addr())
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	h := di.NewHandlers(cfg, gdb, sdb, rdb, startedAt)
	engine := router.NewRouter(h, router.Options{
		Verifier:       jwtmw.NewVerifier(cfg.JWTSecret),
		AdminKeyID:     cfg.AdminKeyID,
		AuthLimiter:    ratelimiter.NewKeyedLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst, 10*time.Minute),
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", srv.Addr, "captcha", cfg.Captcha.Enabled(), "cache", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
