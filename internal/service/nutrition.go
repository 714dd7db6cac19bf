package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nutriscan/internal/foodsource"
	"nutriscan/internal/jsonlog"
	"nutriscan/internal/model"
)

// sourceNone labels lookups that no source could answer.
const sourceNone = "none"

// NutritionService resolves nutrition facts for food labels.
type NutritionService interface {
	// Lookup walks the source chain in order and returns the first record found.
	// Source failures are logged and treated as misses; ErrNotFound is returned when nothing matched.
	Lookup(ctx context.Context, label string) (*model.NutritionRecord, error)

	// LookupBarcode resolves a packaged product by EAN/UPC code.
	LookupBarcode(ctx context.Context, code string) (*model.NutritionRecord, error)

	// FallbackKeys lists the built-in table keys in declaration order.
	FallbackKeys() []string
}

// NutritionOptions wires the lookup chain. Static is always consulted first, then Sources in order.
type NutritionOptions struct {
	Static     *foodsource.Static
	Sources    []foodsource.Source
	Barcode    foodsource.Source
	Registerer prometheus.Registerer
	Logger     *jsonlog.Logger
}

type nutritionService struct {
	static  *foodsource.Static
	chain   []foodsource.Source
	barcode foodsource.Source
	lookups *prometheus.CounterVec
	log     *jsonlog.Logger
	tracer  trace.Tracer
}

// NewNutritionService constructs a NutritionService and registers its metrics with opts.Registerer (if set).
func NewNutritionService(opts NutritionOptions) (NutritionService, error) {
	if opts.Static == nil {
		return nil, fmt.Errorf("static fallback table is required")
	}
	if opts.Logger == nil {
		opts.Logger = jsonlog.Nop()
	}

	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrition_lookups_total",
			Help: "Nutrition lookups by the source that answered them.",
		},
		[]string{"source"},
	)
	if opts.Registerer != nil {
		if err := opts.Registerer.Register(lookups); err != nil {
			return nil, err
		}
	}

	chain := make([]foodsource.Source, 0, len(opts.Sources)+1)
	chain = append(chain, opts.Static)
	chain = append(chain, opts.Sources...)

	return &nutritionService{
		static:  opts.Static,
		chain:   chain,
		barcode: opts.Barcode,
		lookups: lookups,
		log:     opts.Logger,
		tracer:  otel.Tracer("nutriscan/internal/service"),
	}, nil
}

func (s *nutritionService) Lookup(ctx context.Context, label string) (*model.NutritionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "nutrition.lookup", trace.WithAttributes(
		attribute.String("nutrition.label", label),
	))
	defer span.End()

	if strings.TrimSpace(label) == "" {
		s.lookups.WithLabelValues(sourceNone).Inc()
		return nil, ErrNotFound
	}
	return s.resolve(ctx, span, label, s.chain)
}

func (s *nutritionService) LookupBarcode(ctx context.Context, code string) (*model.NutritionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "nutrition.lookup_barcode", trace.WithAttributes(
		attribute.String("nutrition.barcode", code),
	))
	defer span.End()

	if !ValidBarcode(code) {
		return nil, ErrInvalidBarcode
	}
	if s.barcode == nil {
		s.lookups.WithLabelValues(sourceNone).Inc()
		return nil, ErrNotFound
	}
	return s.resolve(ctx, span, code, []foodsource.Source{s.barcode})
}

func (s *nutritionService) resolve(ctx context.Context, span trace.Span, label string, chain []foodsource.Source) (*model.NutritionRecord, error) {
	for _, src := range chain {
		rec, err := src.Find(ctx, label)
		if err != nil {
			// The caller only ever learns "not found"; the cause stays in logs and traces.
			span.RecordError(err)
			s.log.Error("nutrition_source_failed", err, jsonlog.Fields{
				"source": src.Name(),
				"label":  label,
			})
			continue
		}
		if rec == nil {
			continue
		}
		s.lookups.WithLabelValues(src.Name()).Inc()
		span.SetAttributes(attribute.String("nutrition.source", src.Name()))
		s.log.Info("nutrition_found", jsonlog.Fields{
			"source": src.Name(),
			"label":  label,
			"name":   rec.Name,
		})
		return rec, nil
	}

	s.lookups.WithLabelValues(sourceNone).Inc()
	s.log.Info("nutrition_not_found", jsonlog.Fields{"label": label})
	return nil, ErrNotFound
}

func (s *nutritionService) FallbackKeys() []string {
	return s.static.Keys()
}

// ValidBarcode reports whether code looks like an EAN-8, UPC-A, EAN-13 or GTIN-14 code.
func ValidBarcode(code string) bool {
	if len(code) < 8 || len(code) > 14 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
