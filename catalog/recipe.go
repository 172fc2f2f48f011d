// Package catalog holds the recipe model and the pure operations over a loaded
// collection: composite filtering, text search and ingredient extraction.
// Nothing in this package mutates the recipes it is given.
package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// VegetarianTags are the tag values that mark a recipe as vegetarian.
var VegetarianTags = []string{"vegetarian", "végétarien"}

type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Recipe is a single catalog entry. ID is the only link target.
type Recipe struct {
	ID              int          `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description" yaml:"description"`
	Image           string       `json:"image" yaml:"image"`
	Category        string       `json:"category" yaml:"category"`
	Difficulty      string       `json:"difficulty" yaml:"difficulty"`
	PrepTimeMinutes int          `json:"prepTimeMinutes" yaml:"prepTimeMinutes"`
	CookTimeMinutes int          `json:"cookTimeMinutes" yaml:"cookTimeMinutes"`
	Servings        int          `json:"servings" yaml:"servings"`
	Ingredients     []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps           []string     `json:"steps,omitempty" yaml:"steps,omitempty"`
	Tags            []string     `json:"tags" yaml:"tags"`
}

// TotalMinutes is preparation plus cooking time.
func (r Recipe) TotalMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// HasTag reports whether tag is present, compared exactly.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (r Recipe) IsVegetarian() bool {
	for _, tag := range VegetarianTags {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}

// Difficulty is the closed set of difficulty levels a recipe label maps to.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// ParseDifficulty maps a free-form label onto a Difficulty, case-insensitively.
// Unknown or empty labels fall back to Medium.
func ParseDifficulty(label string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy", "facile":
		return Easy
	case "medium", "moyen":
		return Medium
	case "hard", "difficile":
		return Hard
	default:
		return Medium
	}
}

// DifficultyLabels returns the distinct difficulty labels used by recipes,
// compared case-insensitively with the first spelling kept, ordered from
// easiest to hardest.
func DifficultyLabels(recipes []Recipe) []string {
	seen := make(map[string]bool)
	labels := make([]string, 0)
	for _, r := range recipes {
		label := strings.TrimSpace(r.Difficulty)
		key := strings.ToLower(label)
		if label == "" || seen[key] {
			continue
		}
		seen[key] = true
		labels = append(labels, label)
	}
	slices.SortStableFunc(labels, func(a, b string) int {
		return cmp.Compare(ParseDifficulty(a), ParseDifficulty(b))
	})
	return labels
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}
