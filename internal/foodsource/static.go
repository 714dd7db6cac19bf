package foodsource

import (
	"context"

	"nutriscan/internal/model"
)

type staticEntry struct {
	key    string
	record model.NutritionRecord
}

func entry(key, name string, cal, fat, satFat, protein, sodium, potassium, chol, carbs, fiber, sugar float64) staticEntry {
	return staticEntry{key: key, record: model.NutritionRecord{
		Name:          name,
		Source:        "static",
		Calories:      model.Amount(cal),
		Fat:           model.Amount(fat),
		SaturatedFat:  model.Amount(satFat),
		Protein:       model.Amount(protein),
		Sodium:        model.Amount(sodium),
		Potassium:     model.Amount(potassium),
		Cholesterol:   model.Amount(chol),
		Carbohydrates: model.Amount(carbs),
		Fiber:         model.Amount(fiber),
		Sugar:         model.Amount(sugar),
	}}
}

// fallbackFoods are per-100g values for common fruits and vegetables, in display order.
var fallbackFoods = []staticEntry{
	entry("apple", "Apple", 52, 0.2, 0.1, 0.3, 1, 107, 0, 14, 2.4, 10),
	entry("banana", "Banana", 89, 0.3, 0.1, 1.1, 1, 358, 0, 23, 2.6, 12),
	entry("orange", "Orange", 47, 0.1, 0.0, 0.9, 0, 181, 0, 12, 2.4, 9),
	entry("carrot", "Carrot", 41, 0.2, 0.0, 0.9, 69, 320, 0, 10, 2.8, 4.7),
	entry("tomato", "Tomato", 18, 0.2, 0.0, 0.9, 5, 237, 0, 3.9, 1.2, 2.6),
	entry("broccoli", "Broccoli", 34, 0.4, 0.1, 2.8, 33, 316, 0, 7, 2.6, 1.5),
	entry("strawberry", "Strawberry", 32, 0.3, 0.0, 0.7, 1, 153, 0, 8, 2.0, 4.9),
	entry("grape", "Grape", 62, 0.2, 0.1, 0.6, 2, 191, 0, 16, 0.9, 16),
	entry("lemon", "Lemon", 29, 0.3, 0.0, 1.1, 2, 138, 0, 9, 2.8, 2.5),
	entry("corn", "Corn", 86, 1.2, 0.2, 3.2, 15, 270, 0, 19, 2.7, 3.2),
}

// Static is the built-in fallback table. It never touches the network and is read-only.
type Static struct {
	records map[string]model.NutritionRecord
	keys    []string
}

// NewStatic builds the fallback table.
func NewStatic() *Static {
	s := &Static{
		records: make(map[string]model.NutritionRecord, len(fallbackFoods)),
		keys:    make([]string, 0, len(fallbackFoods)),
	}
	for _, e := range fallbackFoods {
		s.records[e.key] = e.record
		s.keys = append(s.keys, e.key)
	}
	return s
}

func (s *Static) Name() string { return "static" }

// Find matches the trimmed, lowercased label exactly. The returned record is a copy.
func (s *Static) Find(_ context.Context, label string) (*model.NutritionRecord, error) {
	rec, ok := s.records[NormalizeKey(label)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Keys returns the table keys in declaration order.
func (s *Static) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
