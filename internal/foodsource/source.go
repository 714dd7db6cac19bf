// Package foodsource contains the places nutrition facts can come from.
// A Source answers (nil, nil) when it simply has no match and a non-nil error when it could not answer.
package foodsource

import (
	"context"
	"strings"

	"nutriscan/internal/model"
)

// Source looks up nutrition facts for a food label.
type Source interface {
	Name() string
	Find(ctx context.Context, label string) (*model.NutritionRecord, error)
}

// NormalizeKey is the key form used by table-backed sources: trimmed and lowercased.
func NormalizeKey(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
