package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vibescout/vibescout/internal/core"
)

// fallbackNamespace seeds deterministic event IDs. Same profile+filters in,
// same list out: the fallback must be reproducible for tests and for the
// results cache.
var fallbackNamespace = uuid.MustParse("9c5f1d6e-4b2a-4e8f-a3d1-7a60c21b5e44")

const genericTeamLabel = "the Home Team"

// Fallback synthesizes a profile-derived event list without touching the
// network. Rules apply independently; the two default events guarantee the
// list is never empty.
func Fallback(profile core.Profile, filters core.SearchFilters) []core.GeneratedEvent {
	location := resolveLocation(profile, filters)
	budget := resolveBudget(filters)
	seed := core.AttemptKey(profile, filters, "fallback")

	events := make([]core.GeneratedEvent, 0, 5)

	if team, ok := sportsAngle(profile); ok {
		events = append(events, sportsEvent(team, location, budget, filters, seed))
	}

	if profile.HasInterest("Food") {
		events = append(events, restaurantEvent(profile, location, budget, seed))
	}

	if profile.HasInterest("Nightlife") || profile.Sociability >= 7 {
		events = append(events, nightlifeEvent(profile, location, seed))
	}

	events = append(events,
		activityEvent(location, budget, seed),
		socialEvent(location, budget, seed),
	)

	return events
}

// sportsAngle reports whether the profile warrants a sports event and which
// team name to headline. The first team is the one for the alphabetically
// first sport, so the pick is stable across runs.
func sportsAngle(profile core.Profile) (string, bool) {
	if len(profile.SportsTeams) > 0 {
		sports := make([]string, 0, len(profile.SportsTeams))
		for sport := range profile.SportsTeams {
			sports = append(sports, sport)
		}
		sort.Strings(sports)
		for _, sport := range sports {
			if team := strings.TrimSpace(profile.SportsTeams[sport]); team != "" {
				return team, true
			}
		}
		return genericTeamLabel, true
	}

	if profile.HasInterest("Sports") {
		return genericTeamLabel, true
	}

	return "", false
}

func sportsEvent(team, location, budget string, filters core.SearchFilters, seed string) core.GeneratedEvent {
	event := core.GeneratedEvent{
		ID:                eventID(seed, "sports"),
		LocationName:      "The Scoreboard",
		LocationAddress:   fmt.Sprintf("148 Court St, %s", location),
		EventName:         fmt.Sprintf("%s Watch Party", team),
		Description:       fmt.Sprintf("Catch the %s game on the big screens with a crowd that actually cares about the score.", team),
		Vibes:             []string{"loud", "competitive", "casual"},
		IsPartnerVenue:    true,
		PriceTier:         budget,
		EstimatedDistance: "0.8 miles",
		ImagePath:         "/images/fallback/sports-bar.jpg",
		VenueType:         "sports_bar",
		CommunityRating:   4.3,
		Reviews: []core.Review{
			{Author: "Marcus T.", Rating: 4.5, Text: "Gets rowdy on game nights in the best way."},
			{Author: "Priya S.", Rating: 4.0, Text: "Wings are solid, screens everywhere."},
		},
	}

	if filters.WantsTrendingSignal {
		event.TrendingNote = &core.TrendingNote{
			Prediction: "filling up fast",
			Notes:      "Game-night crowds here have grown three weekends running.",
		}
	}
	if filters.WantsHiddenGemSignal {
		event.CommunityNote = &core.CommunityNote{
			Notes: "Regulars keep the back room quiet; ask for a table behind the pool tables.",
		}
	}

	return event
}

func restaurantEvent(profile core.Profile, location, budget, seed string) core.GeneratedEvent {
	cuisine := "seasonal"
	if len(profile.FoodPreferences) > 0 {
		cuisine = strings.ToLower(strings.TrimSpace(profile.FoodPreferences[0]))
	}

	return core.GeneratedEvent{
		ID:                eventID(seed, "food"),
		LocationName:      "Tableside",
		LocationAddress:   fmt.Sprintf("27 Market Ln, %s", location),
		EventName:         "Long-Table Dinner",
		Description:       fmt.Sprintf("A shared-plates %s menu built for groups that like passing dishes around.", cuisine),
		Vibes:             []string{"warm", "chatty", "foodie"},
		IsPartnerVenue:    false,
		PriceTier:         budget,
		EstimatedDistance: "1.2 miles",
		ImagePath:         "/images/fallback/restaurant.jpg",
		VenueType:         "restaurant",
		CommunityRating:   4.6,
		Reviews: []core.Review{
			{Author: "Dana K.", Rating: 4.8, Text: "Came for a birthday, stayed three hours."},
		},
	}
}

func nightlifeEvent(profile core.Profile, location, seed string) core.GeneratedEvent {
	genre := "open-format"
	if len(profile.MusicGenres) > 0 {
		genre = strings.ToLower(strings.TrimSpace(profile.MusicGenres[0]))
	}

	return core.GeneratedEvent{
		ID:                eventID(seed, "nightlife"),
		LocationName:      "Afterglow",
		LocationAddress:   fmt.Sprintf("9 Foundry Ave, %s", location),
		EventName:         "Late Set",
		Description:       fmt.Sprintf("A %s DJ set that starts late and a floor that stays full.", genre),
		Vibes:             []string{"energetic", "late-night", "dancey"},
		IsPartnerVenue:    true,
		PriceTier:         "$$$",
		EstimatedDistance: "2.1 miles",
		ImagePath:         "/images/fallback/nightclub.jpg",
		VenueType:         "nightclub",
		CommunityRating:   4.1,
		Reviews: []core.Review{
			{Author: "Leo V.", Rating: 4.2, Text: "Best sound system this side of town."},
		},
	}
}

func activityEvent(location, budget, seed string) core.GeneratedEvent {
	return core.GeneratedEvent{
		ID:                eventID(seed, "activity"),
		LocationName:      "Split Lanes",
		LocationAddress:   fmt.Sprintf("310 Dock Rd, %s", location),
		EventName:         "Bowling & Arcade Night",
		Description:       "Lanes, pinball, and a bar menu. Low stakes, easy to join mid-evening.",
		Vibes:             []string{"playful", "low-key", "group-friendly"},
		IsPartnerVenue:    false,
		PriceTier:         budget,
		EstimatedDistance: "1.5 miles",
		ImagePath:         "/images/fallback/activity.jpg",
		VenueType:         "activity",
		CommunityRating:   4.4,
		Reviews: []core.Review{
			{Author: "Sam R.", Rating: 4.4, Text: "Perfect for a group that can't agree on anything."},
		},
	}
}

func socialEvent(location, budget, seed string) core.GeneratedEvent {
	return core.GeneratedEvent{
		ID:                eventID(seed, "social"),
		LocationName:      "The Commons",
		LocationAddress:   fmt.Sprintf("52 Greenway Pl, %s", location),
		EventName:         "Patio Social",
		Description:       "String lights, fire pits, and enough seating that nobody hovers awkwardly.",
		Vibes:             []string{"relaxed", "conversational", "outdoor"},
		IsPartnerVenue:    false,
		PriceTier:         budget,
		EstimatedDistance: "0.6 miles",
		ImagePath:         "/images/fallback/social.jpg",
		VenueType:         "social",
		CommunityRating:   4.5,
		Reviews: []core.Review{
			{Author: "Ines B.", Rating: 4.6, Text: "My default answer to \"where should we meet?\""},
		},
	}
}

func resolveLocation(profile core.Profile, filters core.SearchFilters) string {
	if location := strings.TrimSpace(filters.Location); location != "" {
		return location
	}
	if location := strings.TrimSpace(profile.Location); location != "" {
		return location
	}
	return "Downtown"
}

func resolveBudget(filters core.SearchFilters) string {
	if budget := strings.TrimSpace(filters.Budget); budget != "" {
		return budget
	}
	return "$$"
}

func eventID(seed, kind string) string {
	return uuid.NewSHA1(fallbackNamespace, []byte(seed+":"+kind)).String()
}
