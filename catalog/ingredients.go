package catalog

import (
	"sort"
	"strings"
)

// ExtractIngredients returns every ingredient name across recipes, lowercased,
// deduplicated and sorted.
func ExtractIngredients(recipes []Recipe) []string {
	seen := map[string]struct{}{}
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			name := strings.ToLower(ing.Name)
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
