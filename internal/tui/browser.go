// Package tui is an interactive browser for resolved event lists: two cards
// at a time, wraparound paging, page-indicator dots.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/carousel"
)

// Model is the bubbletea model for the results browser.
type Model struct {
	carousel *carousel.Carousel
	styles   Styles

	width    int
	quitting bool
}

// New creates a browser over the given events.
func New(events []core.GeneratedEvent) Model {
	return Model{
		carousel: carousel.New(events),
		styles:   DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", "tab":
			m.carousel.Next()
		case "left", "h", "shift+tab":
			m.carousel.Previous()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.carousel.JumpToPage(int(msg.String()[0] - '1'))
		}
	}
	return m, nil
}

// View renders the visible pair with the page indicator.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.carousel.Len() == 0 {
		return m.styles.Title.Render("No events to show.") + "\n" +
			m.styles.Help.Render("q quit")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Tonight's picks"))
	b.WriteString("\n")

	cards := make([]string, 0, 2)
	for _, event := range m.carousel.Visible() {
		cards = append(cards, m.renderCard(event))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	b.WriteString("\n")
	b.WriteString(m.styles.Indicator.Render(m.renderIndicator()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("←/→ page · 1-9 jump · q quit"))
	return b.String()
}

func (m Model) renderCard(event core.GeneratedEvent) string {
	var b strings.Builder

	name := event.EventName
	if event.IsPartnerVenue {
		name += " " + m.styles.Partner.Render("★")
	}
	b.WriteString(m.styles.CardName.Render(name))
	b.WriteString("\n")
	b.WriteString(m.styles.CardMeta.Render(event.LocationName))
	b.WriteString("\n\n")
	b.WriteString(event.Description)
	b.WriteString("\n\n")

	meta := make([]string, 0, 3)
	if event.PriceTier != "" {
		meta = append(meta, event.PriceTier)
	}
	if event.EstimatedDistance != "" {
		meta = append(meta, event.EstimatedDistance)
	}
	if event.CommunityRating > 0 {
		meta = append(meta, fmt.Sprintf("%.1f☆", event.CommunityRating))
	}
	b.WriteString(m.styles.CardMeta.Render(strings.Join(meta, " · ")))

	if event.TrendingNote != nil && event.TrendingNote.Prediction != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.CardMeta.Render("Trending: " + event.TrendingNote.Prediction))
	}
	if event.CommunityNote != nil && event.CommunityNote.Notes != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.CardMeta.Render("Hidden gem: " + event.CommunityNote.Notes))
	}

	return m.styles.Card.Render(b.String())
}

func (m Model) renderIndicator() string {
	var b strings.Builder
	for page := 0; page < m.carousel.PageCount(); page++ {
		if page == m.carousel.ActivePage() {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
		if page < m.carousel.PageCount()-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Run starts the browser and blocks until the user quits.
func Run(events []core.GeneratedEvent) error {
	program := tea.NewProgram(New(events))
	_, err := program.Run()
	return err
}
