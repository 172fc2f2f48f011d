package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipecatalog/catalog"
)

// RecipeSearch applies the composite filter.
type RecipeSearch struct{ svc *catalog.Service }

func NewRecipeSearch(svc *catalog.Service) *RecipeSearch { return &RecipeSearch{svc: svc} }

func (t *RecipeSearch) Name() string  { return "recipe_search" }
func (t *RecipeSearch) Title() string { return "Search Recipes" }
func (t *RecipeSearch) Description() string {
	return "Filters recipes by category, difficulty, time bucket (<30, 30-60, 60+), name and vegetarian tag. All filters are optional and combine with AND."
}

func (t *RecipeSearch) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"category":   {Type: "string"},
			"difficulty": {Type: "string"},
			"time":       {Type: "string"},
			"search":     {Type: "string"},
			"vegetarian": {Type: "boolean"},
		},
	}
}

func (t *RecipeSearch) OutputSchema() *jsonschema.Schema {
	return recipesOutputSchema()
}

func (t *RecipeSearch) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	if t.svc == nil {
		return nil, ErrNoCatalog
	}

	bucket, err := catalog.ParseTimeBucket(stringArg(input, "time"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	criteria := catalog.Criteria{
		Category:       stringArg(input, "category"),
		Difficulty:     stringArg(input, "difficulty"),
		Time:           bucket,
		Search:         stringArg(input, "search"),
		VegetarianOnly: boolArg(input, "vegetarian"),
	}
	return map[string]any{"recipes": t.svc.Filter(ctx, criteria)}, nil
}

// RecipeTextSearch matches a term against recipe names and descriptions.
type RecipeTextSearch struct{ svc *catalog.Service }

func NewRecipeTextSearch(svc *catalog.Service) *RecipeTextSearch {
	return &RecipeTextSearch{svc: svc}
}

func (t *RecipeTextSearch) Name() string  { return "recipe_text_search" }
func (t *RecipeTextSearch) Title() string { return "Search Recipe Text" }
func (t *RecipeTextSearch) Description() string {
	return "Returns recipes whose name or description contains q, ignoring case. An empty q returns every recipe."
}

func (t *RecipeTextSearch) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"q": {Type: "string"},
		},
	}
}

func (t *RecipeTextSearch) OutputSchema() *jsonschema.Schema {
	return recipesOutputSchema()
}

func (t *RecipeTextSearch) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	if t.svc == nil {
		return nil, ErrNoCatalog
	}
	return map[string]any{"recipes": t.svc.Search(ctx, stringArg(input, "q"))}, nil
}

// IngredientList returns the ingredient vocabulary.
type IngredientList struct{ svc *catalog.Service }

func NewIngredientList(svc *catalog.Service) *IngredientList { return &IngredientList{svc: svc} }

func (t *IngredientList) Name() string  { return "ingredient_list" }
func (t *IngredientList) Title() string { return "List Ingredients" }
func (t *IngredientList) Description() string {
	return "Returns every ingredient name used in the catalog, lowercased, deduplicated and sorted."
}

func (t *IngredientList) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func (t *IngredientList) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredients": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
		},
		Required: []string{"ingredients"},
	}
}

func (t *IngredientList) Run(ctx context.Context, _ map[string]any) (map[string]any, error) {
	if t.svc == nil {
		return nil, ErrNoCatalog
	}
	return map[string]any{"ingredients": t.svc.Ingredients(ctx)}, nil
}

func recipesOutputSchema() *jsonschema.Schema {
	minInt := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipes": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"id":              {Type: "integer"},
						"name":            {Type: "string"},
						"category":        {Type: "string"},
						"difficulty":      {Type: "string"},
						"prepTimeMinutes": {Type: "integer", Minimum: &minInt},
						"cookTimeMinutes": {Type: "integer", Minimum: &minInt},
					},
					Required: []string{"id", "name"},
				},
			},
		},
		Required: []string{"recipes"},
	}
}
