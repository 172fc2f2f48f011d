package catalog

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"recipecatalog"
)

// Service serves queries over one loaded snapshot of the catalog, recording
// spans, metrics and a query log entry for each call.
type Service struct {
	recipes []Recipe
	logger  recipecatalog.QueryLogger
	tracer  trace.Tracer

	queries  metric.Int64Counter
	results  metric.Int64Histogram
	duration metric.Float64Histogram
}

// NewService wraps a loaded collection. The slice must not be modified afterwards.
func NewService(recipes []Recipe, log recipecatalog.QueryLogger, tracer trace.Tracer, meter metric.Meter) *Service {
	queries, _ := meter.Int64Counter("catalog_queries_total",
		metric.WithDescription("Total number of catalog queries served"))
	results, _ := meter.Int64Histogram("catalog_query_results",
		metric.WithDescription("Number of recipes returned per query"))
	duration, _ := meter.Float64Histogram("catalog_query_duration_seconds",
		metric.WithDescription("Time taken to answer a catalog query in seconds"))

	if log == nil {
		log = recipecatalog.NewNoOpQueryLogger()
	}

	return &Service{
		recipes:  recipes,
		logger:   log,
		tracer:   tracer,
		queries:  queries,
		results:  results,
		duration: duration,
	}
}

// Recipes returns the full collection in source order.
func (s *Service) Recipes() []Recipe {
	return s.recipes
}

// Get returns the recipe with the given id.
func (s *Service) Get(id int) (Recipe, bool) {
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Filter applies the composite filter.
func (s *Service) Filter(ctx context.Context, c Criteria) []Recipe {
	var out []Recipe
	s.observe(ctx, "filter", c.Fields(), func() int {
		out = Filter(s.recipes, c)
		return len(out)
	})
	return out
}

// Search applies the name-or-description text search.
func (s *Service) Search(ctx context.Context, term string) []Recipe {
	var out []Recipe
	s.observe(ctx, "search", map[string]any{"q": term}, func() int {
		out = SearchText(s.recipes, term)
		return len(out)
	})
	return out
}

// Ingredients returns the ingredient vocabulary of the catalog.
func (s *Service) Ingredients(ctx context.Context) []string {
	var out []string
	s.observe(ctx, "ingredients", nil, func() int {
		out = ExtractIngredients(s.recipes)
		return len(out)
	})
	return out
}

func (s *Service) observe(ctx context.Context, op string, input map[string]any, fn func() int) {
	ctx, span := s.tracer.Start(ctx, "Catalog."+op)
	defer span.End()

	start := time.Now()
	n := fn()
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("operation", op))
	s.queries.Add(ctx, 1, attrs)
	s.results.Record(ctx, int64(n), attrs)
	s.duration.Record(ctx, elapsed.Seconds(), attrs)

	span.SetAttributes(
		attribute.String("catalog.operation", op),
		attribute.Int("catalog.results", n),
		attribute.Int("catalog.size", len(s.recipes)),
	)

	if err := s.logger.LogQuery(recipecatalog.QueryLog{
		Timestamp: start,
		Operation: op,
		Input:     input,
		Results:   n,
		Duration:  elapsed,
	}); err != nil {
		slog.Warn("CATALOG: Failed to log query", "operation", op, "error", err)
	}
}
