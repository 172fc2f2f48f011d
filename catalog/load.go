package catalog

import (
	"context"
	"fmt"
)

// Source yields the raw bytes of a stored catalog.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

// Load performs the single read of the catalog. It does not retry.
func Load(ctx context.Context, src Source, format Format) ([]Recipe, error) {
	b, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}
	recipes, err := Decode(b, format)
	if err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}
	return recipes, nil
}
