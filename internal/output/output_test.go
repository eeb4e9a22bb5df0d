package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/carousel"
)

func sampleEvents() []core.GeneratedEvent {
	return []core.GeneratedEvent{
		{
			ID:                "e1",
			LocationName:      "The Scoreboard",
			LocationAddress:   "148 Court St, Downtown",
			EventName:         "Watch Party",
			Description:       "Big screens, loud crowd.",
			Vibes:             []string{"loud", "casual"},
			IsPartnerVenue:    true,
			PriceTier:         "$$",
			EstimatedDistance: "0.8 miles",
			CommunityRating:   4.3,
		},
		{
			ID:           "e2",
			LocationName: "Tableside",
			EventName:    "Long-Table Dinner",
			PriceTier:    "$$$",
		},
		{
			ID:           "e3",
			LocationName: "The Commons",
			EventName:    "Patio Social",
		},
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat("ics")
	require.NoError(t, err)
	require.Equal(t, FormatICS, format)

	_, err = ParseFormat("yaml")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestNewFormatterSelectsImplementation(t *testing.T) {
	require.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	require.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	require.IsType(t, &ICSFormatter{}, NewFormatter(FormatICS))
}

func TestTableFormatterRendersEvents(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatEvents(sampleEvents())
	require.NoError(t, err)

	require.Contains(t, rendered, "Watch Party")
	// Partner venues are starred.
	require.Contains(t, rendered, "The Scoreboard ★")
	require.NotContains(t, rendered, "Tableside ★")
	require.Contains(t, rendered, "loud, casual")
	require.Contains(t, rendered, "4.3")
	require.Contains(t, rendered, "3 events")
}

func TestTableFormatterEmptyList(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatEvents(nil)
	require.NoError(t, err)
	require.Equal(t, "No events to show.", rendered)
}

func TestFormatPageShowsPairAndIndicator(t *testing.T) {
	c := carousel.New(sampleEvents())

	rendered, err := FormatPage(c)
	require.NoError(t, err)
	require.Contains(t, rendered, "Watch Party")
	require.Contains(t, rendered, "Long-Table Dinner")
	require.NotContains(t, rendered, "Patio Social")
	require.Contains(t, rendered, "● ○")
	require.Contains(t, rendered, "(page 1/2)")

	c.Next()
	rendered, err = FormatPage(c)
	require.NoError(t, err)
	require.Contains(t, rendered, "Patio Social")
	require.Contains(t, rendered, "○ ●")
	require.Contains(t, rendered, "(page 2/2)")
}

func TestFormatPageEmptyCarousel(t *testing.T) {
	rendered, err := FormatPage(carousel.New(nil))
	require.NoError(t, err)
	require.Equal(t, "No events to show.", rendered)
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).FormatEvents(sampleEvents())
	require.NoError(t, err)

	var decoded []core.GeneratedEvent
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, "Watch Party", decoded[0].EventName)
}

func TestJSONFormatterNilEventsIsEmptyArray(t *testing.T) {
	rendered, err := (&JSONFormatter{}).FormatEvents(nil)
	require.NoError(t, err)
	require.Equal(t, "[]", rendered)
}

func TestICSFormatterSchedulesEveningPlaceholders(t *testing.T) {
	morning := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	formatter := &ICSFormatter{Now: func() time.Time { return morning }}

	rendered, err := formatter.FormatEvents(sampleEvents()[:1])
	require.NoError(t, err)

	require.Contains(t, rendered, "BEGIN:VCALENDAR")
	require.Contains(t, rendered, "METHOD:PUBLISH")
	require.Contains(t, rendered, "UID:e1")
	require.Contains(t, rendered, "SUMMARY:Watch Party")
	// Morning anchor lands on the same evening at 19:00 UTC.
	require.Contains(t, rendered, "DTSTART:20260801T190000Z")
	require.Contains(t, rendered, "DTEND:20260801T210000Z")
	require.Contains(t, rendered, "END:VCALENDAR")
}

func TestICSFormatterRollsPastEvenings(t *testing.T) {
	lateNight := time.Date(2026, 8, 1, 23, 30, 0, 0, time.UTC)
	formatter := &ICSFormatter{Now: func() time.Time { return lateNight }}

	rendered, err := formatter.FormatEvents(sampleEvents()[:1])
	require.NoError(t, err)
	require.Contains(t, rendered, "DTSTART:20260802T190000Z")
}

func TestICSDescriptionCarriesSignals(t *testing.T) {
	event := sampleEvents()[0]
	event.TrendingNote = &core.TrendingNote{Prediction: "filling up fast"}
	event.CommunityNote = &core.CommunityNote{Notes: "ask for the back room"}

	description := icsDescription(event)
	lines := strings.Split(description, "\n")
	require.Contains(t, lines, "Vibes: loud, casual")
	require.Contains(t, lines, "Price: $$")
	require.Contains(t, lines, "Trending: filling up fast")
	require.Contains(t, lines, "Community: ask for the back room")
}
