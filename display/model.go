package display

import (
	"fmt"

	"recipecatalog/catalog"
)

// DetailPath is the route of the recipe detail view cards link to.
const DetailPath = "/recipe"

const NoResultsMessage = "No recipes found"

// Card is everything a surface needs to show one recipe.
type Card struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Badge       Badge  `json:"badge"`
	Time        string `json:"time"`
	Servings    int    `json:"servings"`
	Image       string `json:"image"`
	Href        string `json:"href"`
}

func NewCard(r catalog.Recipe) Card {
	return Card{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Badge:       BadgeFor(r.Difficulty),
		Time:        FormatTime(r.TotalMinutes()),
		Servings:    r.Servings,
		Image:       r.Image,
		Href:        fmt.Sprintf("%s?id=%d", DetailPath, r.ID),
	}
}

// List is either the cards of a result set, in order, or the empty-state message.
type List struct {
	Cards   []Card `json:"cards"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

func NewList(recipes []catalog.Recipe) List {
	if len(recipes) == 0 {
		return List{Cards: []Card{}, Empty: true, Message: NoResultsMessage}
	}
	cards := make([]Card, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, NewCard(r))
	}
	return List{Cards: cards}
}
