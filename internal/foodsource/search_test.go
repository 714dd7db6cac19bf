package foodsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriscan/internal/config"
	"nutriscan/internal/model"
)

func newSearchSource(t *testing.T, h http.HandlerFunc) (*OpenFoodFacts, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewOpenFoodFacts(config.OpenFoodFactsConfig{BaseURL: srv.URL + "/", UserAgent: "nutriscan-test"}, srv.Client()), srv
}

func known(t *testing.T, n model.Nutrient) float64 {
	t.Helper()
	v, ok := n.Value()
	require.True(t, ok, "expected a known value, got N/A")
	return v
}

func TestOpenFoodFacts_FirstProductMapped(t *testing.T) {
	src, _ := newSearchSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Kiwi Fruit", q.Get("search_terms"))
		assert.Equal(t, "1", q.Get("search_simple"))
		assert.Equal(t, "process", q.Get("action"))
		assert.Equal(t, "1", q.Get("json"))
		assert.Equal(t, "nutriscan-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 2, "products": [
			{"product_name": "Gold Kiwi", "nutriments": {
				"energy-kcal_100g": 63, "fat_100g": 0.3, "saturated-fat_100g": "0.1",
				"proteins_100g": 1.0, "sodium_100g": 0.003, "carbohydrates_100g": 15.8,
				"fiber_100g": 1.4, "sugars_100g": 12.3, "potassium_100g": "trace"}},
			{"product_name": "Second", "nutriments": {"energy-kcal_100g": 999}}
		]}`))
	})

	rec, err := src.Find(context.Background(), "Kiwi Fruit")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Gold Kiwi", rec.Name)
	assert.Equal(t, "openfoodfacts", rec.Source)
	assert.Equal(t, 63.0, known(t, rec.Calories))
	assert.Equal(t, 0.3, known(t, rec.Fat))
	assert.Equal(t, 0.1, known(t, rec.SaturatedFat))
	assert.Equal(t, 15.8, known(t, rec.Carbohydrates))
	assert.Equal(t, 12.3, known(t, rec.Sugar))

	_, ok := rec.Potassium.Value()
	assert.False(t, ok, "non-numeric value maps to N/A")
	_, ok = rec.Cholesterol.Value()
	assert.False(t, ok, "missing value maps to N/A")
}

func TestOpenFoodFacts_NameFallsBackToLabel(t *testing.T) {
	src, _ := newSearchSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"nutriments": {}}]}`))
	})

	rec, err := src.Find(context.Background(), "Mystery")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Mystery", rec.Name)
	_, ok := rec.Calories.Value()
	assert.False(t, ok)
}

func TestOpenFoodFacts_NoMatchAndFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "empty product list", status: http.StatusOK, body: `{"count":0,"products":[]}`},
		{name: "products key absent", status: http.StatusOK, body: `{"count":0}`},
		{name: "non-200", status: http.StatusServiceUnavailable, body: `oops`, wantErr: ErrUpstreamStatus},
		{name: "malformed body", status: http.StatusOK, body: `{"products": [`, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := newSearchSource(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rec, err := src.Find(context.Background(), "zzznotfood")
			assert.Nil(t, rec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpenFoodFacts_Unreachable(t *testing.T) {
	src, srv := newSearchSource(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	rec, err := src.Find(context.Background(), "zzznotfood")
	assert.Nil(t, rec)
	assert.Error(t, err)
}

func TestNewOpenFoodFacts_DefaultClient(t *testing.T) {
	src := NewOpenFoodFacts(config.OpenFoodFactsConfig{BaseURL: "https://example.test", TimeoutSec: 2}, nil)
	require.NotNil(t, src.api.http)
	assert.Equal(t, "openfoodfacts", src.Name())
	assert.Equal(t, int64(2), int64(src.api.http.Timeout.Seconds()))
}
