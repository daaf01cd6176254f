package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset sheets use.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorMuted  = colorSubtext0
)

// Styles used to draw sheet cards.
type Styles struct {
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	Title       lipgloss.Style
	Body        lipgloss.Style
	Hint        lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Background(colorBase).
		Padding(1, 2)
	return Styles{
		Card:        card,
		FocusedCard: card.BorderForeground(colorFocus),
		Title:       lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Body:        lipgloss.NewStyle().Foreground(colorText),
		Hint:        lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
