package postgres

import (
	"context"
	"database/sql"

	"nutriscan/internal/model"
	"nutriscan/internal/repository"
)

// FoodPostgres is a PostgreSQL implementation of repository.FoodRepository.
// Nullable nutrient columns map to N/A.
type FoodPostgres struct {
	db *sql.DB
}

// NewFoodPostgres creates a new FoodPostgres repository.
func NewFoodPostgres(db *sql.DB) *FoodPostgres {
	return &FoodPostgres{db: db}
}

var _ repository.FoodRepository = (*FoodPostgres)(nil)

// FindByName fetches one food by its normalized name.
func (r *FoodPostgres) FindByName(ctx context.Context, name string) (*model.NutritionRecord, error) {
	const q = `
		SELECT display_name, calories, fat, saturated_fat, protein, sodium,
		       potassium, cholesterol, carbohydrates, fiber, sugar
		FROM foods
		WHERE name = $1
	`
	var (
		display string
		cols    [10]sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, q, name).Scan(
		&display,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4],
		&cols[5], &cols[6], &cols[7], &cols[8], &cols[9],
	)
	if err != nil {
		return nil, err
	}

	n := func(v sql.NullFloat64) model.Nutrient {
		if !v.Valid {
			return model.Unknown()
		}
		return model.Amount(v.Float64)
	}
	return &model.NutritionRecord{
		Name:          display,
		Calories:      n(cols[0]),
		Fat:           n(cols[1]),
		SaturatedFat:  n(cols[2]),
		Protein:       n(cols[3]),
		Sodium:        n(cols[4]),
		Potassium:     n(cols[5]),
		Cholesterol:   n(cols[6]),
		Carbohydrates: n(cols[7]),
		Fiber:         n(cols[8]),
		Sugar:         n(cols[9]),
	}, nil
}
