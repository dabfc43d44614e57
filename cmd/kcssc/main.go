// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Command kcssc runs the community centre site API: events, programs and
// the photo gallery, backed by SQLite with an optional remote backend.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/kcssc/kcssc-go/internal/cache"
	"github.com/kcssc/kcssc-go/internal/config"
	"github.com/kcssc/kcssc-go/internal/handler/api"
	"github.com/kcssc/kcssc-go/internal/imaging"
	"github.com/kcssc/kcssc-go/internal/logging"
	"github.com/kcssc/kcssc-go/internal/middleware"
	"github.com/kcssc/kcssc-go/internal/service"
	"github.com/kcssc/kcssc-go/internal/store"
	"github.com/kcssc/kcssc-go/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("kcssc", version.String())
		return
	}

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	slog.SetDefault(log)

	log.Info("starting kcssc",
		"version", version.Version,
		"env", cfg.Env,
		"addr", cfg.ServerAddr())

	ttl := time.Duration(cfg.CacheTTL) * time.Second
	cacher, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      ttl,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}
	if cfg.UseRedisCache() {
		log.Info("entity caches backed by redis", "prefix", cfg.CachePrefix)
	}
	caches := cache.NewEntityCaches(cacher, ttl)
	defer caches.Close()

	var (
		backend service.Backend
		db      *sql.DB
	)
	switch {
	case cfg.UseMockData:
		log.Info("mock data mode: writes disabled, reads served from samples")
	case cfg.BackendConfigured():
		log.Info("using remote backend", "url", cfg.APIBaseURL)
		backend = service.NewAPIClient(cfg.APIBaseURL)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		db, err = store.NewDB(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.Migrate(db); err != nil {
			return err
		}
		if cfg.DoSeed {
			if err := store.Seed(context.Background(), db, log); err != nil {
				return err
			}
		}
		log.Info("using local database", "path", cfg.DBPath)
		backend = service.NewStoreBackend(store.New(db))
	}

	data := service.New(service.Options{
		Backend:   backend,
		Caches:    caches,
		MockDelay: mockDelay(cfg),
		Logger:    log,
	})
	log.Info("data service ready", "mode", data.Mode())

	uploads, err := imaging.NewProcessor(cfg.UploadsDir)
	if err != nil {
		return err
	}

	rl := middleware.NewRateLimiter(5, 10)
	handler := api.New(api.Options{
		Data:       data,
		Uploads:    uploads,
		DB:         db,
		Logger:     log,
		UploadsDir: cfg.UploadsDir,
		Mutation: []func(http.Handler) http.Handler{
			rl.Handler,
			middleware.RequireAdmin(cfg.AdminTokenHash),
		},
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(chimw.Compress(5))
	r.Use(middleware.CORS(cfg.Origins()))

	r.Mount("/", handler.Routes())

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("stopped")
	return nil
}

// mockDelay simulates network latency in mock mode during development so
// the site's loading states stay visible. Production and real backends
// never wait.
func mockDelay(cfg *config.Config) time.Duration {
	if cfg.UseMockData && cfg.IsDevelopment() {
		return service.DefaultMockDelay
	}
	return 0
}
