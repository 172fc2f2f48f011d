package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorEasy   = lipgloss.Color("#8BC34A")
	colorMedium = lipgloss.Color("#FFC107")
	colorHard   = lipgloss.Color("#e53935")
	colorMuted  = lipgloss.Color("#9e9e9e")
	colorBorder = lipgloss.Color("#2a3850")
)

// Terminal writes display models as bordered text cards.
type Terminal struct {
	card   lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	badges map[Badge]lipgloss.Style
}

// NewTerminal builds a terminal adapter whose cards are width columns wide.
func NewTerminal(width int) *Terminal {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return &Terminal{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(width),
		title: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
		badges: map[Badge]lipgloss.Style{
			BadgeEasy:   badge.Foreground(colorEasy),
			BadgeMedium: badge.Foreground(colorMedium),
			BadgeHard:   badge.Foreground(colorHard),
		},
	}
}

// Card renders one card. The image slot shows the recipe name when there is no image.
func (t *Terminal) Card(c Card) string {
	image := c.Image
	if image == "" {
		image = c.Name
	}
	badge, ok := t.badges[c.Badge]
	if !ok {
		badge = t.badges[BadgeMedium]
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.title.Render(fmt.Sprintf("#%d %s", c.ID, c.Name)),
		t.muted.Render(image),
		c.Description,
		lipgloss.JoinHorizontal(lipgloss.Top, "["+c.Category+"] ", badge.Render(c.Difficulty)),
		fmt.Sprintf("%s • %d servings", c.Time, c.Servings),
		t.muted.Render(c.Href),
	)
	return t.card.Render(body)
}

// Render writes every card, or the empty-state message, to w. A nil mount point is a no-op.
func (t *Terminal) Render(w io.Writer, list List) error {
	if unmounted(w) {
		return nil
	}
	if list.Empty {
		_, err := fmt.Fprintln(w, t.muted.Render(list.Message))
		return err
	}
	cards := make([]string, 0, len(list.Cards))
	for _, c := range list.Cards {
		cards = append(cards, t.Card(c))
	}
	_, err := fmt.Fprintln(w, strings.Join(cards, "\n"))
	return err
}
