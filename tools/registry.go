package tools

import (
	"context"
	"fmt"
	"sort"

	"recipecatalog/catalog"
	"recipecatalog/favorites"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates a registry over a loaded catalog and a favorites store.
// A nil catalog is allowed: its tools then fail with ErrNoCatalog.
func NewRegistry(svc *catalog.Service, fav *favorites.Store) (*Registry, error) {
	if fav == nil {
		return nil, fmt.Errorf("favorites store is required")
	}

	all := []Tool{
		NewRecipeSearch(svc),
		NewRecipeTextSearch(svc),
		NewIngredientList(svc),
		NewFavoriteToggle(fav),
		NewFavoriteList(fav),
	}

	registry := Registry{}
	for _, t := range all {
		registry[t.Name()] = t
	}
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return tool, nil
}

// Dispatch runs the named tool.
func (r Registry) Dispatch(ctx context.Context, call Call) (map[string]any, error) {
	tool, err := r.GetTool(call.Name)
	if err != nil {
		return nil, err
	}
	input := call.Input
	if input == nil {
		input = map[string]any{}
	}
	return tool.Run(ctx, input)
}
