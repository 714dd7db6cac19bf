package foodsource

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"nutriscan/internal/model"
)

// Per-100g keys of an Open Food Facts "nutriments" object.
const (
	keyEnergyKcal    = "energy-kcal_100g"
	keyFat           = "fat_100g"
	keySaturatedFat  = "saturated-fat_100g"
	keyProteins      = "proteins_100g"
	keySodium        = "sodium_100g"
	keyPotassium     = "potassium_100g"
	keyCholesterol   = "cholesterol_100g"
	keyCarbohydrates = "carbohydrates_100g"
	keyFiber         = "fiber_100g"
	keySugars        = "sugars_100g"
)

// recordFromNutriments maps a nutriments object onto a record. Missing or non-numeric values become N/A.
func recordFromNutriments(source, name string, n gjson.Result) *model.NutritionRecord {
	get := func(key string) model.Nutrient {
		return nutrientOf(n.Get(key))
	}
	return &model.NutritionRecord{
		Name:          name,
		Source:        source,
		Calories:      get(keyEnergyKcal),
		Fat:           get(keyFat),
		SaturatedFat:  get(keySaturatedFat),
		Protein:       get(keyProteins),
		Sodium:        get(keySodium),
		Potassium:     get(keyPotassium),
		Cholesterol:   get(keyCholesterol),
		Carbohydrates: get(keyCarbohydrates),
		Fiber:         get(keyFiber),
		Sugar:         get(keySugars),
	}
}

func nutrientOf(v gjson.Result) model.Nutrient {
	switch v.Type {
	case gjson.Number:
		return model.Amount(v.Num)
	case gjson.String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64); err == nil {
			return model.Amount(f)
		}
	}
	return model.Unknown()
}

// displayName prefers the product's own name and falls back to the label that was searched for.
func displayName(product gjson.Result, label string) string {
	if name := strings.TrimSpace(product.Get("product_name").String()); name != "" {
		return name
	}
	return label
}
