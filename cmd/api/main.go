package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"smartrecruit/internal/config"
	"smartrecruit/internal/database"
	"smartrecruit/internal/database/migration"
	handlers "smartrecruit/internal/http/handler"
	"smartrecruit/internal/http/middleware"
	"smartrecruit/internal/letters"
	"smartrecruit/internal/otel"
	"smartrecruit/internal/repository/postgres"
	"smartrecruit/internal/screening"
	"smartrecruit/internal/service"
	"smartrecruit/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	loc := time.UTC

	// Tracing is a no-op unless OTEL_ENABLED is set
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	renderer, err := letters.NewRenderer(objStore)
	if err != nil {
		log.Fatalf("failed to initialize letter renderer: %v", err)
	}

	// Without an API key the gate runs unconfigured and admits everyone.
	var reviewer screening.Reviewer
	if cfg.Gemini.APIKey != "" {
		geminiReviewer, err := screening.NewGeminiReviewer(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("failed to initialize eligibility reviewer: %v", err)
		}
		reviewer = geminiReviewer
	}
	gate := screening.NewGate(reviewer, logger)

	// Initialize repositories and services
	appRepo := postgres.NewApplicationPostgres(db)
	jobRepo := postgres.NewJobPostgres(db)
	candidateRepo := postgres.NewCandidatePostgres(db)
	notificationRepo := postgres.NewNotificationPostgres(db)
	engagementRepo := postgres.NewEngagementPostgres(db)

	effects, err := service.NewCoordinator(
		appRepo, jobRepo, candidateRepo, notificationRepo,
		renderer, logger, prometheus.DefaultRegisterer,
	)
	if err != nil {
		log.Fatalf("failed to initialize side-effect coordinator: %v", err)
	}

	pipelineSvc := service.NewPipelineService(
		appRepo, jobRepo, candidateRepo, notificationRepo, engagementRepo,
		gate, effects, logger,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, pipelineSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
