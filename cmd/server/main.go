package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-courses-app/internal/adapter/api/rest"
	"go-courses-app/internal/adapter/cache/redis"
	repo "go-courses-app/internal/adapter/storage/postgres"
	"go-courses-app/internal/config"
	"go-courses-app/internal/core/service"
	"go-courses-app/internal/observability"
)

// -- MAIN --

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Init Tracing
	tpShutdown, err := observability.InitTracerProvider(ctx, "courses-service", cfg.OtelExporterEndpoint)
	if err != nil {
		logger.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := tpShutdown(ctx); err != nil {
			logger.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// Init DB
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Run Migrations (Apply on Startup)
	if err := repo.RunMigrations(ctx, dbPool, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Metrics: DB Stats Poller
	observability.StartDBStatsCollector(dbPool)

	// Init Cache
	redisAdapter := redis.NewAdapter(cfg.RedisAddr)
	// Wrap with metrics
	cacheSvc := observability.NewInstrumentedCache(redisAdapter)

	// Repository Init
	userRepo := repo.NewUserRepository(dbPool)
	courseRepo := repo.NewCourseRepository(dbPool)

	// Service Init
	authSvc := service.NewAuthService(userRepo, cfg.BcryptCost)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, logger)

	// Init Handlers
	courseHandler := rest.NewCourseHandler(courseSvc, logger)
	userHandler := rest.NewUserHandler(authSvc, logger)

	// Init Router
	basicAuth := rest.BasicAuth(authSvc, logger)
	router := rest.NewRouter(courseHandler, userHandler, basicAuth,
		rest.RequestID, rest.Logger(logger), observability.Middleware)

	// Add /metrics endpoint
	// Note: Usually /metrics is on a separate admin port or protected, adding to main mux for simplicity
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	// Graceful Shutdown
	go func() {
		logger.Info("Starting server", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
