package tui

import "github.com/charmbracelet/lipgloss"

// Palette for the results browser.
var (
	ColorAccent = lipgloss.Color("212")
	ColorDim    = lipgloss.Color("241")
	ColorGold   = lipgloss.Color("220")
)

// Styles groups the lipgloss styles used by the browser.
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	CardName  lipgloss.Style
	CardMeta  lipgloss.Style
	Partner   lipgloss.Style
	Indicator lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1).
			Width(38),
		CardName: lipgloss.NewStyle().
			Bold(true),
		CardMeta: lipgloss.NewStyle().
			Foreground(ColorDim),
		Partner: lipgloss.NewStyle().
			Foreground(ColorGold),
		Indicator: lipgloss.NewStyle().
			Foreground(ColorAccent).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(ColorDim).
			MarginTop(1),
	}
}
