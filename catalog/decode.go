package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a stored catalog.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file name or object key extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ErrNoRecipeList is returned for a catalog object that wraps no recipe list.
var ErrNoRecipeList = errors.New(`catalog object has no "recipes" or "recettes" list`)

// Decode parses a catalog. Both a bare list of recipes and an object wrapping
// the list under "recipes" (or "recettes") are accepted.
func Decode(data []byte, format Format) ([]Recipe, error) {
	var (
		recipes []Recipe
		err     error
	)
	switch format {
	case FormatYAML:
		recipes, err = decodeYAML(data)
	default:
		recipes, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []Recipe{}
	}
	return recipes, nil
}

func decodeJSON(data []byte) ([]Recipe, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env struct {
			Recipes  json.RawMessage `json:"recipes"`
			Recettes json.RawMessage `json:"recettes"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		list := env.Recipes
		if list == nil {
			list = env.Recettes
		}
		if list == nil {
			return nil, ErrNoRecipeList
		}
		trimmed = list
	}

	var recipes []Recipe
	if err := json.Unmarshal(trimmed, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func decodeYAML(data []byte) ([]Recipe, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var env struct {
			Recipes yaml.Node `yaml:"recipes"`
		}
		if err := root.Decode(&env); err != nil {
			return nil, err
		}
		if env.Recipes.Kind == 0 {
			return nil, ErrNoRecipeList
		}
		var recipes []Recipe
		if err := env.Recipes.Decode(&recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	case yaml.SequenceNode:
		var recipes []Recipe
		if err := root.Decode(&recipes); err != nil {
			return nil, err
		}
		return recipes, nil
	default:
		return nil, fmt.Errorf("unexpected yaml document kind %d", root.Kind)
	}
}

// wireIngredient and wireRecipe accept the English field names as well as the
// French ones used by recettes.json data files.
type wireIngredient struct {
	Name     string   `json:"name"`
	Nom      string   `json:"nom"`
	Quantity *float64 `json:"quantity"`
	Quantite *float64 `json:"quantité"`
	Unit     string   `json:"unit"`
	Unite    string   `json:"unité"`
}

type wireRecipe struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Nom           string           `json:"nom"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Categorie     string           `json:"catégorie"`
	Difficulty    string           `json:"difficulty"`
	Difficulte    string           `json:"difficulté"`
	Prep          *int             `json:"prepTimeMinutes"`
	Preparation   *int             `json:"tempsPréparation"`
	Cook          *int             `json:"cookTimeMinutes"`
	Cuisson       *int             `json:"tempsCuisson"`
	Servings      *int             `json:"servings"`
	Portions      *int             `json:"portions"`
	Ingredients   []wireIngredient `json:"ingredients"`
	IngredientsFR []wireIngredient `json:"ingrédients"`
	Steps         []string         `json:"steps"`
	Etapes        []string         `json:"étapes"`
	Tags          []string         `json:"tags"`
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w wireRecipe
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	ingredients := w.Ingredients
	if ingredients == nil {
		ingredients = w.IngredientsFR
	}

	*r = Recipe{
		ID:              w.ID,
		Name:            firstNonEmpty(w.Name, w.Nom),
		Description:     w.Description,
		Image:           w.Image,
		Category:        firstNonEmpty(w.Category, w.Categorie),
		Difficulty:      firstNonEmpty(w.Difficulty, w.Difficulte),
		PrepTimeMinutes: firstInt(w.Prep, w.Preparation),
		CookTimeMinutes: firstInt(w.Cook, w.Cuisson),
		Servings:        firstInt(w.Servings, w.Portions),
		Steps:           w.Steps,
		Tags:            w.Tags,
	}
	if r.Steps == nil {
		r.Steps = w.Etapes
	}
	if ingredients != nil {
		r.Ingredients = make([]Ingredient, 0, len(ingredients))
		for _, in := range ingredients {
			qty := in.Quantity
			if qty == nil {
				qty = in.Quantite
			}
			ing := Ingredient{
				Name: firstNonEmpty(in.Name, in.Nom),
				Unit: firstNonEmpty(in.Unit, in.Unite),
			}
			if qty != nil {
				ing.Quantity = *qty
			}
			r.Ingredients = append(r.Ingredients, ing)
		}
	}
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstInt(a, b *int) int {
	switch {
	case a != nil:
		return *a
	case b != nil:
		return *b
	default:
		return 0
	}
}
