// Package display turns recipes into display models (Card, List) and writes
// those models to a mount point through an HTML or terminal adapter.
package display

import (
	"fmt"

	"recipecatalog/catalog"
)

// FormatTime renders a minute count as "45 min", "1h" or "1h 30min".
func FormatTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest > 0 {
		return fmt.Sprintf("%dh %dmin", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}

// Badge is the display category of a difficulty label.
type Badge string

const (
	BadgeEasy   Badge = "easy"
	BadgeMedium Badge = "medium"
	BadgeHard   Badge = "hard"
)

// BadgeFor maps a difficulty label to its badge. Unrecognized labels get BadgeMedium.
func BadgeFor(label string) Badge {
	return badgeOf(catalog.ParseDifficulty(label))
}

func badgeOf(d catalog.Difficulty) Badge {
	switch d {
	case catalog.Easy:
		return BadgeEasy
	case catalog.Hard:
		return BadgeHard
	case catalog.Medium:
		return BadgeMedium
	default:
		return BadgeMedium
	}
}

// Class is the CSS class used for the badge.
func (b Badge) Class() string {
	return "badge-" + string(b)
}
