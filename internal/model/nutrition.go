package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is the wire sentinel for a nutrient with no known value.
const NotAvailable = "N/A"

// Nutrient is a per-100g amount that may be unknown.
// It encodes as a JSON number when known and as the string "N/A" otherwise, never as null.
type Nutrient struct {
	value float64
	known bool
}

// Amount returns a known nutrient value.
func Amount(v float64) Nutrient {
	return Nutrient{value: v, known: true}
}

// Unknown returns a nutrient with no value.
func Unknown() Nutrient {
	return Nutrient{}
}

// Value returns the amount and whether it is known.
func (n Nutrient) Value() (float64, bool) {
	return n.value, n.known
}

func (n Nutrient) String() string {
	if !n.known {
		return NotAvailable
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (n Nutrient) MarshalJSON() ([]byte, error) {
	if !n.known {
		return []byte(`"` + NotAvailable + `"`), nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON accepts a number, a numeric string, or "N/A".
func (n *Nutrient) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Unknown()
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == NotAvailable || s == "" {
			*n = Unknown()
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("nutrient: invalid value %q", s)
		}
		*n = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("nutrient: %w", err)
	}
	*n = Amount(v)
	return nil
}

// NutritionRecord holds nutrition facts per 100g for a single food.
// Records are passed by value or copied before being handed out; nothing mutates one after construction.
type NutritionRecord struct {
	Name          string   `json:"name"`
	Calories      Nutrient `json:"calories"`
	Fat           Nutrient `json:"fat"`
	SaturatedFat  Nutrient `json:"saturated_fat"`
	Protein       Nutrient `json:"protein"`
	Sodium        Nutrient `json:"sodium"`
	Potassium     Nutrient `json:"potassium"`
	Cholesterol   Nutrient `json:"cholesterol"`
	Carbohydrates Nutrient `json:"carbohydrates"`
	Fiber         Nutrient `json:"fiber"`
	Sugar         Nutrient `json:"sugar"`

	// Source names the lookup that produced the record. Table sources (static, catalog) store
	// sodium, potassium and cholesterol in mg; Open Food Facts sources report them in g.
	Source string `json:"-"`
}
