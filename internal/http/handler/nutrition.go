package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"nutriscan/internal/service"
)

// selfTestLabel is the food looked up by GET /test.
const selfTestLabel = "apple"

// NutritionByLabel godoc
// @Summary Nutrition facts by food name
// @Description Looks the label up in the built-in table, then in the food database. Missing nutrients are "N/A".
// @Tags nutrition
// @Produce json
// @Param label path string true "Food name, URL-encoded"
// @Success 200 {object} model.NutritionRecord
// @Failure 404 {object} errorPayload
// @Router /nutrition/{label} [get]
func NutritionByLabel(svc service.NutritionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params alias the request buffer; the label outlives the request in logs and spans.
		label := utils.CopyString(c.Params("label"))
		if unescaped, err := url.PathUnescape(label); err == nil {
			label = unescaped
		}

		rec, err := svc.Lookup(c.UserContext(), label)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "nutrition information not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "server error")
		}
		return c.JSON(rec)
	}
}

// NutritionByBarcode godoc
// @Summary Nutrition facts by barcode
// @Tags nutrition
// @Produce json
// @Param code path string true "EAN/UPC code, 8 to 14 digits"
// @Success 200 {object} model.NutritionRecord
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /nutrition/barcode/{code} [get]
func NutritionByBarcode(svc service.NutritionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.LookupBarcode(c.UserContext(), utils.CopyString(c.Params("code")))
		switch {
		case err == nil:
			return c.JSON(rec)
		case errors.Is(err, service.ErrInvalidBarcode):
			return writeError(c, fiber.StatusBadRequest, "INVALID_BARCODE", "barcode must be 8 to 14 digits")
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "nutrition information not found")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "server error")
		}
	}
}

// SelfTest looks up a known food and lists the built-in table keys.
// nutrition_info is null when the lookup fails.
func SelfTest(svc service.NutritionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, _ := svc.Lookup(c.UserContext(), selfTestLabel)
		return c.JSON(fiber.Map{
			"test_label":     selfTestLabel,
			"nutrition_info": rec,
			"fallback_keys":  svc.FallbackKeys(),
		})
	}
}
