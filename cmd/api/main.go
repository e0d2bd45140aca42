package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/pdf"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/skills"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore, err := db.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage open failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisConfigured() {
		client, err := db.NewRedisClient(cfg)
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		redisCache := cache.NewRedis(client)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Close()
		logger.Info("redis cache connected")
		cacheStore = redisCache
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	var notifier contact.Notifier
	if mailer == nil || cfg.OwnerEmail == "" {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	adminGate := auth.NewSecret(cfg.AdminPassword, cfg.AdminPasswordHash)
	if !adminGate.Configured() {
		logger.Warn("admin login disabled: ADMIN_PASSWORD not set")
	}
	resumeGate := auth.NewSecret(cfg.ResumePassword, "")

	val := validation.New()

	server := &handlers.Server{
		Cfg:   cfg,
		Log:   logger,
		Gate:  adminGate,
		Store: store,
	}

	projectsHandler := projects.NewHandler(projects.NewService(store), val, logger)
	skillsHandler := skills.NewHandler(skills.NewService(store), val, logger)

	renderer := pdf.NewChromedpRenderer(cfg.ChromePath)
	pdfTTL := time.Duration(cfg.PDFCacheTTLSeconds) * time.Second
	resumeHandler := resume.NewHandler(resume.NewService(store, resumeGate, renderer, cacheStore, pdfTTL, logger), logger)

	contactHandler := contact.NewHandler(contact.NewService(store, notifier, cfg.OwnerEmail, logger), val, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.CORS(cfg.FrontendOrigin))

	r.Get("/healthz", server.Health)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	writes := middleware.AdminAuth(cfg.AdminAPIKey)

	r.Route("/api", func(api chi.Router) {
		api.Group(func(std chi.Router) {
			std.Use(chiMiddleware.Timeout(30 * time.Second))

			std.Route("/projects", func(pr chi.Router) {
				pr.Get("/", projectsHandler.List)
				pr.With(writes).Post("/", projectsHandler.Create)
				pr.With(writes).Put("/", projectsHandler.Update)
				pr.With(writes).Delete("/", projectsHandler.Delete)
				pr.With(writes).Post("/reorder", projectsHandler.Reorder)
			})

			std.Route("/skills", func(sr chi.Router) {
				sr.Get("/", skillsHandler.List)
				sr.With(writes).Post("/", skillsHandler.Create)
				sr.With(writes).Put("/", skillsHandler.Update)
				sr.With(writes).Delete("/", skillsHandler.Delete)
				sr.With(writes).Post("/reorder", skillsHandler.Reorder)
			})

			std.Get("/resume", resumeHandler.Get)
			std.Post("/resume", resumeHandler.Save)

			std.With(contactLimiter.Middleware).Post("/contact", contactHandler.Create)

			std.Route("/admin", func(admin chi.Router) {
				admin.With(loginLimiter.Middleware).Post("/login", server.AdminLogin)
				admin.With(middleware.RequireAdminKey(cfg.AdminAPIKey)).Get("/contacts", contactHandler.List)
			})
		})

		// Headless Chrome can take longer than the default request budget.
		api.With(chiMiddleware.Timeout(120*time.Second)).Get("/resume/pdf", resumeHandler.PDF)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
