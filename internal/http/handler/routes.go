package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"nutriscan/internal/jsonlog"
	"nutriscan/internal/service"
	"nutriscan/web"
)

// RegisterRoutes attaches the application routes to app.
// db is the optional food catalog; nil means no database is configured.
func RegisterRoutes(app *fiber.App, db *sql.DB, nutrition service.NutritionService, uploads service.UploadService, log *jsonlog.Logger) {
	app.Get("/", Index())
	app.Post("/upload", Upload(uploads, log))
	app.Get("/nutrition/barcode/:code", NutritionByBarcode(nutrition))
	app.Get("/nutrition/:label", NutritionByLabel(nutrition))
	app.Get("/test", SelfTest(nutrition))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
}

// Index serves the upload page.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").Send(web.IndexHTML)
	}
}

// HealthCheck godoc
// @Summary Readiness check
// @Description Pings the food catalog database when one is configured.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.JSON(fiber.Map{"status": "healthy"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
