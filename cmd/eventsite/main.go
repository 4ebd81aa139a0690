// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command eventsite runs the Herren Events website: public pages,
// contact and review forms, the admin dashboard and the JSON API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
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

	"github.com/rherren/eventsite/internal/cache"
	"github.com/rherren/eventsite/internal/config"
	"github.com/rherren/eventsite/internal/handler"
	"github.com/rherren/eventsite/internal/middleware"
	"github.com/rherren/eventsite/internal/render"
	"github.com/rherren/eventsite/internal/scheduler"
	"github.com/rherren/eventsite/internal/session"
	"github.com/rherren/eventsite/internal/store"
	"github.com/rherren/eventsite/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "eventsite - Herren Events website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_SESSION_SECRET   Session encryption key (required in production, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_DB_PATH          SQLite database path (default: ./data/eventsite.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_SERVER_PORT      Server port (default: 5000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_ADMIN_USERNAME   Seed admin username (default: rherren)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_ADMIN_PASSWORD   Seed admin password (required in production)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  EVENTSITE_REDIS_URL        Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("eventsite %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	ctx := context.Background()
	if err := store.Seed(ctx, db, store.SeedParams{
		AdminUsername: cfg.AdminUsername,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	cacheBackend := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     "eventsite:",
		DefaultTTL: cacheTTL,
	})
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	reviewCache := cache.NewReviewCache(cacheBackend, cacheTTL)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("locating templates: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	contentFS, err := fs.Sub(web.Content, "content")
	if err != nil {
		return fmt.Errorf("locating page content: %w", err)
	}

	// Background jobs: hourly cache refresh, nightly SQLite maintenance
	sched := scheduler.New(db, reviewCache, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret),
		fmt.Sprintf(":%d", cfg.ServerPort),
		cfg.IsDevelopment(),
	)
	r.Use(middleware.CSRF(csrfConfig))

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	publicRateLimiter := middleware.NewGlobalRateLimiter(10.0, 20)
	apiRateLimiter := middleware.NewGlobalRateLimiter(5.0, 10)

	queries := store.New(db)

	frontendHandler, err := handler.NewFrontendHandler(renderer, contentFS)
	if err != nil {
		return fmt.Errorf("initializing frontend handler: %w", err)
	}
	contactHandler := handler.NewContactHandler(db, renderer)
	reviewHandler := handler.NewReviewHandler(db, renderer, reviewCache)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer, reviewCache)
	apiHandler := handler.NewAPIHandler(db)

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("locating static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public pages
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteGallery, frontendHandler.Gallery)
	r.Get(handler.RouteServices, frontendHandler.Services)

	// Public forms, rate limited per IP
	r.Group(func(r chi.Router) {
		r.Use(publicRateLimiter.HTMLMiddleware())
		r.Get(handler.RouteContact, contactHandler.Form)
		r.Post(handler.RouteContact, contactHandler.Submit)
		r.Get(handler.RouteReviews, reviewHandler.List)
		r.Post(handler.RouteReviews, reviewHandler.Submit)
	})

	// Auth
	r.Group(func(r chi.Router) {
		r.Use(loginProtection.Middleware())
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
	})
	r.With(middleware.Auth(sessionManager)).Get(handler.RouteLogout, authHandler.Logout)

	// Admin
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, queries))
		r.Use(middleware.RequireAdmin)
		r.Get("/", adminHandler.Dashboard)
		r.Get("/approve_review/{id}", adminHandler.ApproveReview)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(apiRateLimiter.Middleware())
		r.Get("/time", apiHandler.Time)

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoadUser(sessionManager, queries))
			r.Use(middleware.RequireAdminAPI)
			r.Get("/users", apiHandler.Users)
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
