package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0 min"},
		{1, "1 min"},
		{45, "45 min"},
		{59, "59 min"},
		{60, "1h"},
		{61, "1h 1min"},
		{90, "1h 30min"},
		{120, "2h"},
		{215, "3h 35min"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTime(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestBadgeFor(t *testing.T) {
	tests := map[string]Badge{
		"easy":      BadgeEasy,
		"Easy":      BadgeEasy,
		"FACILE":    BadgeEasy,
		"facile":    BadgeEasy,
		"moyen":     BadgeMedium,
		"medium":    BadgeMedium,
		"Difficile": BadgeHard,
		"hard":      BadgeHard,
		"inconnu":   BadgeMedium,
		"":          BadgeMedium,
	}
	for label, expected := range tests {
		assert.Equal(t, expected, BadgeFor(label), label)
	}

	assert.Equal(t, "badge-hard", BadgeHard.Class())
}
