package foodsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"nutriscan/internal/config"
	"nutriscan/internal/model"
)

// Barcode looks up a packaged product by its EAN/UPC code through the product API.
// The raw nutriments object is mapped directly so unreported nutrients stay N/A.
type Barcode struct {
	api offClient
}

// NewBarcode builds the barcode source. A nil client gets one with the configured timeout.
func NewBarcode(cfg config.OpenFoodFactsConfig, client *http.Client) *Barcode {
	return &Barcode{api: newOFFClient(cfg, client)}
}

func (b *Barcode) Name() string { return "barcode" }

// Find treats label as a product code. An unknown product is a miss, not an error.
func (b *Barcode) Find(ctx context.Context, code string) (*model.NutritionRecord, error) {
	status, body, err := b.api.get(ctx, "/api/v0/product/"+url.PathEscape(code)+".json", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", code, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch product %s: %w: %d", code, ErrUpstreamStatus, status)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("fetch product %s: %w", code, ErrMalformedResponse)
	}

	// status 0 is the API's "product not found".
	res := gjson.ParseBytes(body)
	product := res.Get("product")
	if res.Get("status").Int() != 1 || !product.IsObject() {
		return nil, nil
	}
	return recordFromNutriments(b.Name(), displayName(product, code), product.Get("nutriments")), nil
}
