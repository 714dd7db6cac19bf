package repository

import (
	"context"

	"nutriscan/internal/model"
)

// FoodRepository reads nutrition records from the food catalog. It never writes.
type FoodRepository interface {
	// FindByName returns the record stored under the normalized (trimmed, lowercase) name.
	// It returns sql.ErrNoRows when no row matches.
	FindByName(ctx context.Context, name string) (*model.NutritionRecord, error)
}
