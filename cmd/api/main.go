package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"nutriscan/docs"
	"nutriscan/internal/config"
	"nutriscan/internal/database"
	"nutriscan/internal/database/migration"
	"nutriscan/internal/foodsource"
	handlers "nutriscan/internal/http/handler"
	"nutriscan/internal/http/middleware"
	"nutriscan/internal/jsonlog"
	"nutriscan/internal/otel"
	"nutriscan/internal/repository/postgres"
	"nutriscan/internal/service"
	"nutriscan/internal/storage"
)

// @title NutriScan API
// @version 1.0
// @description Infers a food from an uploaded image's file name and returns its nutrition facts.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := jsonlog.Stdout(cfg.Location())

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exit", err, nil)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *jsonlog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	store, err := newStorage(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Optional read-only catalog, consulted between the built-in table and the food database.
	var (
		db      *sql.DB
		sources []foodsource.Source
	)
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect catalog database: %w", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			return err
		}
		sources = append(sources, foodsource.NewCatalog(postgres.NewFoodPostgres(db)))
	}

	httpClient := &http.Client{
		Timeout:   cfg.OpenFoodFacts.Timeout(),
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	sources = append(sources, foodsource.NewOpenFoodFacts(cfg.OpenFoodFacts, httpClient))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	nutritionSvc, err := service.NewNutritionService(service.NutritionOptions{
		Static:     foodsource.NewStatic(),
		Sources:    sources,
		Barcode:    foodsource.NewBarcode(cfg.OpenFoodFacts, httpClient),
		Registerer: reg,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("init nutrition service: %w", err)
	}
	uploadSvc := service.NewUploadService(store, nutritionSvc, cfg.Upload, logger)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Upload.MaxBytes,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(cfg.Location()))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, db, nutritionSvc, uploadSvc, logger)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info("server_listening", jsonlog.Fields{
			"addr":            addr,
			"storage_backend": cfg.Upload.Backend,
			"catalog_enabled": db != nil,
		})
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_shutdown", nil)
	return app.ShutdownWithTimeout(10 * time.Second)
}

func newStorage(cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Upload.Backend {
	case "", "local":
		return storage.NewLocal(cfg.Upload.Dir)
	case "minio":
		return storage.NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Upload.Backend)
	}
}
