package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/carousel"
)

// TableFormatter renders events as an ASCII table.
type TableFormatter struct{}

// FormatEvents renders the event list as a table.
func (f *TableFormatter) FormatEvents(events []core.GeneratedEvent) (string, error) {
	if len(events) == 0 {
		return "No events to show.", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Event", "Venue", "Vibes", "Price", "Distance", "Rating"})

	for _, event := range events {
		t.AppendRow(table.Row{
			event.EventName,
			venueLabel(event),
			strings.Join(event.Vibes, ", "),
			event.PriceTier,
			event.EstimatedDistance,
			ratingLabel(event),
		})
	}

	t.AppendFooter(table.Row{
		"",
		"",
		"",
		"",
		"",
		fmt.Sprintf("%d events", len(events)),
	})

	return t.Render(), nil
}

// FormatPage renders the currently visible carousel pair with its page
// indicator.
func FormatPage(c *carousel.Carousel) (string, error) {
	if c == nil || c.Len() == 0 {
		return "No events to show.", nil
	}

	formatter := &TableFormatter{}
	rendered, err := formatter.FormatEvents(c.Visible())
	if err != nil {
		return "", err
	}

	return rendered + "\n" + pageIndicator(c), nil
}

func pageIndicator(c *carousel.Carousel) string {
	var sb strings.Builder
	for page := 0; page < c.PageCount(); page++ {
		if page == c.ActivePage() {
			sb.WriteString("●")
		} else {
			sb.WriteString("○")
		}
		if page < c.PageCount()-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(fmt.Sprintf("  (page %d/%d)", c.ActivePage()+1, c.PageCount()))
	return sb.String()
}

func venueLabel(event core.GeneratedEvent) string {
	label := event.LocationName
	if event.IsPartnerVenue {
		label += " ★"
	}
	return label
}

func ratingLabel(event core.GeneratedEvent) string {
	if event.CommunityRating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", event.CommunityRating)
}
