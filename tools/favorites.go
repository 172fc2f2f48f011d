package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipecatalog/favorites"
)

type FavoriteToggle struct{ store *favorites.Store }

func NewFavoriteToggle(store *favorites.Store) *FavoriteToggle {
	return &FavoriteToggle{store: store}
}

func (t *FavoriteToggle) Name() string  { return "favorite_toggle" }
func (t *FavoriteToggle) Title() string { return "Toggle Favorite" }
func (t *FavoriteToggle) Description() string {
	return "Adds the recipe id to the favorites, or removes it if already present."
}

func (t *FavoriteToggle) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {Type: "integer"},
		},
		Required: []string{"id"},
	}
}

func (t *FavoriteToggle) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":       {Type: "integer"},
			"favorite": {Type: "boolean"},
		},
		Required: []string{"id", "favorite"},
	}
}

func (t *FavoriteToggle) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := intArg(input, "id")
	if err != nil {
		return nil, err
	}
	favorite, err := t.store.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id, "favorite": favorite}, nil
}

type FavoriteList struct{ store *favorites.Store }

func NewFavoriteList(store *favorites.Store) *FavoriteList { return &FavoriteList{store: store} }

func (t *FavoriteList) Name() string  { return "favorite_list" }
func (t *FavoriteList) Title() string { return "List Favorites" }
func (t *FavoriteList) Description() string {
	return "Returns the favorite recipe ids in the order they were added."
}

func (t *FavoriteList) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func (t *FavoriteList) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"favorites": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "integer"},
			},
		},
		Required: []string{"favorites"},
	}
}

func (t *FavoriteList) Run(ctx context.Context, _ map[string]any) (map[string]any, error) {
	ids, err := t.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"favorites": ids}, nil
}
