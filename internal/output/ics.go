package output

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/vibescout/vibescout/internal/core"
)

// ICSFormatter renders events as an iCalendar feed so suggestions can be
// pulled into a calendar client. Generated events carry no concrete start
// time; each one is scheduled as a same-evening placeholder.
type ICSFormatter struct {
	// Now anchors the placeholder schedule. Defaults to time.Now.
	Now func() time.Time
}

const placeholderDuration = 2 * time.Hour

// FormatEvents renders the event list as an ICS calendar.
func (f *ICSFormatter) FormatEvents(events []core.GeneratedEvent) (string, error) {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//vibescout//discovery//EN")

	start := eveningAnchor(now().UTC())
	for _, event := range events {
		ve := cal.AddEvent(event.ID)
		ve.SetDtStampTime(now().UTC())
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(placeholderDuration))
		ve.SetSummary(event.EventName)
		ve.SetLocation(icsLocation(event))
		ve.SetDescription(icsDescription(event))
	}

	return cal.Serialize(), nil
}

// eveningAnchor picks 19:00 on the current day, or the next day when the
// evening has already passed.
func eveningAnchor(now time.Time) time.Time {
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 19, 0, 0, 0, time.UTC)
	if !anchor.After(now) {
		anchor = anchor.AddDate(0, 0, 1)
	}
	return anchor
}

func icsLocation(event core.GeneratedEvent) string {
	if event.LocationAddress != "" {
		return fmt.Sprintf("%s, %s", event.LocationName, event.LocationAddress)
	}
	return event.LocationName
}

func icsDescription(event core.GeneratedEvent) string {
	parts := []string{event.Description}
	if len(event.Vibes) > 0 {
		parts = append(parts, "Vibes: "+strings.Join(event.Vibes, ", "))
	}
	if event.PriceTier != "" {
		parts = append(parts, "Price: "+event.PriceTier)
	}
	if event.TrendingNote != nil && event.TrendingNote.Prediction != "" {
		parts = append(parts, "Trending: "+event.TrendingNote.Prediction)
	}
	if event.CommunityNote != nil && event.CommunityNote.Notes != "" {
		parts = append(parts, "Community: "+event.CommunityNote.Notes)
	}
	return strings.Join(parts, "\n")
}
