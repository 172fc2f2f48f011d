package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_JSON(t *testing.T) {
	t.Run("english keys", func(t *testing.T) {
		data := []byte(`[{
			"id": 7, "name": "Crêpes", "description": "Thin pancakes", "image": "img/crepes.jpg",
			"category": "Dessert", "difficulty": "easy", "prepTimeMinutes": 10, "cookTimeMinutes": 20,
			"servings": 4, "ingredients": [{"name": "Farine", "quantity": 250, "unit": "g"}],
			"tags": ["vegetarian"]
		}]`)

		recipes, err := Decode(data, FormatJSON)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, Recipe{
			ID: 7, Name: "Crêpes", Description: "Thin pancakes", Image: "img/crepes.jpg",
			Category: "Dessert", Difficulty: "easy", PrepTimeMinutes: 10, CookTimeMinutes: 20,
			Servings: 4, Ingredients: []Ingredient{{Name: "Farine", Quantity: 250, Unit: "g"}},
			Tags: []string{"vegetarian"},
		}, recipes[0])
	})

	t.Run("french keys inside a recettes envelope", func(t *testing.T) {
		data := []byte(`{"recettes": [{
			"id": 3, "nom": "Quiche lorraine", "description": "Tarte salée",
			"catégorie": "Plat", "difficulté": "Moyen", "tempsPréparation": 20, "tempsCuisson": 40,
			"portions": 6, "ingrédients": [{"nom": "Lardons", "quantité": 200, "unité": "g"}],
			"étapes": ["Préchauffer le four"], "tags": []
		}]}`)

		recipes, err := Decode(data, FormatJSON)
		require.NoError(t, err)
		require.Len(t, recipes, 1)

		r := recipes[0]
		assert.Equal(t, "Quiche lorraine", r.Name)
		assert.Equal(t, "Plat", r.Category)
		assert.Equal(t, "Moyen", r.Difficulty)
		assert.Equal(t, 60, r.TotalMinutes())
		assert.Equal(t, 6, r.Servings)
		assert.Equal(t, []Ingredient{{Name: "Lardons", Quantity: 200, Unit: "g"}}, r.Ingredients)
		assert.Equal(t, []string{"Préchauffer le four"}, r.Steps)
	})

	t.Run("empty list", func(t *testing.T) {
		recipes, err := Decode([]byte(`[]`), FormatJSON)
		require.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
	})

	t.Run("object without a recipe list", func(t *testing.T) {
		for _, data := range []string{
			`{"id": 1, "name": "Soupe"}`,
			`{"recipies": [{"id": 1}]}`,
			`{}`,
		} {
			recipes, err := Decode([]byte(data), FormatJSON)
			assert.ErrorIs(t, err, ErrNoRecipeList, data)
			assert.Nil(t, recipes, data)
		}
	})

	t.Run("empty envelope", func(t *testing.T) {
		recipes, err := Decode([]byte(`{"recipes": []}`), FormatJSON)
		require.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
	})

	t.Run("corrupted", func(t *testing.T) {
		_, err := Decode([]byte(`not json`), FormatJSON)
		assert.Error(t, err)
	})
}

func TestDecode_YAML(t *testing.T) {
	data := []byte(`
recipes:
  - id: 1
    name: Gaspacho
    category: Entrée
    difficulty: easy
    prepTimeMinutes: 15
    cookTimeMinutes: 0
    servings: 4
    ingredients:
      - name: Tomate
      - name: Concombre
    tags: [végétarien]
`)

	recipes, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Gaspacho", recipes[0].Name)
	assert.True(t, recipes[0].IsVegetarian())
	assert.Equal(t, []string{"concombre", "tomate"}, ExtractIngredients(recipes))

	list, err := Decode([]byte("- id: 2\n  name: Soupe\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ID)

	_, err = Decode([]byte("just a string"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("id: 3\nname: Soupe\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrNoRecipeList)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("data/recipes.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("recipes.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("data/recettes.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("s3-key-without-extension"))
}
