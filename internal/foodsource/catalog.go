package foodsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nutriscan/internal/model"
	"nutriscan/internal/repository"
)

// Catalog serves records from an operator-maintained food table. It only reads.
type Catalog struct {
	repo repository.FoodRepository
}

// NewCatalog wraps a FoodRepository as a Source.
func NewCatalog(repo repository.FoodRepository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) Name() string { return "catalog" }

func (c *Catalog) Find(ctx context.Context, label string) (*model.NutritionRecord, error) {
	key := NormalizeKey(label)
	if key == "" {
		return nil, nil
	}
	rec, err := c.repo.FindByName(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	rec.Source = c.Name()
	return rec, nil
}
