package foodsource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"nutriscan/internal/config"
	"nutriscan/internal/model"
)

var (
	ErrUpstreamStatus    = errors.New("food database returned non-200 status")
	ErrMalformedResponse = errors.New("food database returned malformed body")
)

// OpenFoodFacts searches the public Open Food Facts database by free text and maps the first product.
type OpenFoodFacts struct {
	api offClient
}

// NewOpenFoodFacts builds the search source. A nil client gets one with the configured timeout.
func NewOpenFoodFacts(cfg config.OpenFoodFactsConfig, client *http.Client) *OpenFoodFacts {
	return &OpenFoodFacts{api: newOFFClient(cfg, client)}
}

func (s *OpenFoodFacts) Name() string { return "openfoodfacts" }

// Find issues exactly one search request with the label as given (original casing).
// No retries are attempted.
func (s *OpenFoodFacts) Find(ctx context.Context, label string) (*model.NutritionRecord, error) {
	q := url.Values{}
	q.Set("search_terms", label)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")

	status, body, err := s.api.get(ctx, "/cgi/search.pl", q)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, status)
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}

	products := gjson.GetBytes(body, "products")
	if !products.IsArray() {
		return nil, nil
	}
	list := products.Array()
	if len(list) == 0 {
		return nil, nil
	}

	first := list[0]
	return recordFromNutriments(s.Name(), displayName(first, label), first.Get("nutriments")), nil
}
