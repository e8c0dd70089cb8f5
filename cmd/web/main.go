package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/config"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/database"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/logging"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/metrics"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/server"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/web"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	cleanupInterval = 15 * time.Minute
	brandingTTL     = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	sealer, err := session.NewSealer(cfg.SessionSecret)
	if err != nil {
		logger.Error("session sealer", "error", err)
		os.Exit(1)
	}

	var (
		sessions session.Store
		db       *sql.DB
	)
	switch cfg.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, sealer)
	default:
		db, err = database.Open(cfg.DBPath)
		if err != nil {
			logger.Error("open database", "error", err, "path", cfg.DBPath)
			os.Exit(1)
		}
		defer db.Close()
		sessions = session.NewSQLiteStore(db, sealer)
	}

	m := metrics.New()
	backendLogger := logger.With("component", "backend")
	api := backend.New(cfg.BackendURL,
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithBreaker(backend.NewBreaker("backend", cfg.BreakerFailures, backendLogger, m)),
		backend.WithMetrics(m),
		backend.WithLogger(backendLogger),
	)

	srv, err := server.New(server.Options{
		Backend:         api,
		Sessions:        sessions,
		Metrics:         m,
		Assets:          web.FS,
		BaseURL:         cfg.BaseURL,
		DefaultLanguage: cfg.DefaultLanguage,
		SessionTTL:      cfg.SessionTTL,
		SecureCookies:   cfg.SecureCookies,
		TrustProxy:      cfg.TrustProxy,
		Version:         version,
		BrandingTTL:     brandingTTL,
		Logger:          logger,
	})
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go cleanup(ctx, sessions, srv, logger.With("component", "cleanup"))

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("web frontend listening",
			"addr", httpServer.Addr,
			"backend", cfg.BackendURL,
			"sessions", cfg.SessionBackend,
			"version", version,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// cleanup periodically drops expired sessions and stale rate limit buckets.
func cleanup(ctx context.Context, sessions session.Store, srv *server.Server, logger *slog.Logger) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.DeleteExpired(ctx)
			if err != nil {
				logger.Error("delete expired sessions", "error", err)
			} else if n > 0 {
				logger.Info("expired sessions removed", "count", n)
			}
			if removed := srv.RateLimiter().Cleanup(); removed > 0 {
				logger.Debug("rate limit buckets removed", "count", removed)
			}
		}
	}
}
