package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"recipecatalog"
	"recipecatalog/catalog"
	"recipecatalog/favorites"
	"recipecatalog/storage"
	"recipecatalog/tools"
)

type Results struct {
	Output map[string]any `json:"output"`
}

type handlerDeps struct {
	Recipes   storage.RecipeState
	Source    string
	Favorites storage.Blob
	Notifier  recipecatalog.Notifier

	QueryLogger   recipecatalog.QueryLogger
	Tracer        trace.Tracer
	CatalogTracer trace.Tracer
	CatalogMeter  metric.Meter

	// FlushTelemetry, when set, runs after every invocation. The Lambda
	// environment may freeze the process before batched spans are exported.
	FlushTelemetry func(context.Context) error
}

// handler answers tool calls against a catalog loaded once per cold start.
type handler struct {
	registry *tools.Registry
	loadErr  error
	tracer   trace.Tracer
	flush    func(context.Context) error
}

func newHandler(ctx context.Context, deps handlerDeps) (*handler, error) {
	h := &handler{tracer: deps.Tracer, flush: deps.FlushTelemetry}

	var svc *catalog.Service
	recipes, err := catalog.Load(ctx, deps.Recipes, catalog.FormatFromPath(deps.Source))
	if err != nil {
		recipecatalog.ReportLoadFailure(ctx, deps.Notifier, deps.Source, err)
		h.loadErr = fmt.Errorf("unable to load recipes: %w", err)
	} else {
		svc = catalog.NewService(recipes, deps.QueryLogger, deps.CatalogTracer, deps.CatalogMeter)
		slog.Info("SETUP: Recipes loaded", "source", deps.Source, "recipes_count", len(recipes))
	}

	registry, err := tools.NewRegistry(svc, favorites.NewStore(deps.Favorites))
	if err != nil {
		return nil, err
	}
	h.registry = registry
	return h, nil
}

// Handle dispatches one tool call. A failed cold-start load fails every
// catalog call with the same error; favorites keep working.
func (h *handler) Handle(ctx context.Context, call tools.Call) (Results, error) {
	if h.flush != nil {
		defer func() {
			if err := h.flush(ctx); err != nil {
				slog.Error("RESULT: Failed to flush telemetry", "error", err)
			}
		}()
	}

	ctx, span := h.tracer.Start(ctx, "lambda.handle",
		trace.WithAttributes(attribute.String("tool.name", call.Name)))
	defer span.End()

	slog.Info("REQUEST: Tool call", "tool", call.Name)
	output, err := h.registry.Dispatch(ctx, call)
	if err != nil {
		if h.loadErr != nil && errors.Is(err, tools.ErrNoCatalog) {
			err = h.loadErr
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("RESULT: Error handling tool call", "tool", call.Name, "error", err)
		return Results{}, err
	}
	return Results{Output: output}, nil
}
