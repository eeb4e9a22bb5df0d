package generate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vibescout/vibescout/internal/core"
)

func fullProfile() core.Profile {
	return core.Profile{
		Name:            "sam",
		Location:        "Brooklyn",
		Interests:       []string{"Sports", "Food", "Nightlife"},
		SportsTeams:     map[string]string{"basketball": "the Nets", "soccer": "NYCFC"},
		FoodPreferences: []string{"Korean"},
		MusicGenres:     []string{"House"},
		Sociability:     8,
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	profile := fullProfile()
	filters := core.SearchFilters{Location: "downtown", WantsTrendingSignal: true}

	first := Fallback(profile, filters)
	second := Fallback(profile, filters)

	require.Equal(t, first, second)
	for _, event := range first {
		require.NotEmpty(t, event.ID)
	}
}

func TestFallbackAlwaysIncludesDefaults(t *testing.T) {
	events := Fallback(core.Profile{}, core.SearchFilters{})

	require.Len(t, events, 2)
	require.Equal(t, "activity", events[0].VenueType)
	require.Equal(t, "social", events[1].VenueType)
}

func TestFallbackSportsRuleUsesTeamName(t *testing.T) {
	profile := core.Profile{
		Name:        "sam",
		SportsTeams: map[string]string{"soccer": "NYCFC", "basketball": "the Nets"},
	}

	events := Fallback(profile, core.SearchFilters{})

	require.Len(t, events, 3)
	// Alphabetically first sport wins: basketball.
	require.Equal(t, "the Nets Watch Party", events[0].EventName)
	require.Contains(t, events[0].Description, "the Nets")
	require.Equal(t, "sports_bar", events[0].VenueType)
}

func TestFallbackSportsRuleGenericTeam(t *testing.T) {
	profile := core.Profile{Name: "sam", Interests: []string{"Sports"}}

	events := Fallback(profile, core.SearchFilters{})

	require.Len(t, events, 3)
	require.Equal(t, "the Home Team Watch Party", events[0].EventName)
}

func TestFallbackLakersFanGetsTrendingWatchParty(t *testing.T) {
	profile := core.Profile{
		Name:        "alex",
		Interests:   []string{"Sports"},
		SportsTeams: map[string]string{"Basketball": "Lakers"},
	}
	filters := core.SearchFilters{Budget: "$$", WantsTrendingSignal: true}

	events := Fallback(profile, filters)

	require.Equal(t, "Lakers Watch Party", events[0].EventName)
	require.Equal(t, "sports_bar", events[0].VenueType)
	require.Equal(t, "$$", events[0].PriceTier)
	require.NotNil(t, events[0].TrendingNote)
	require.Nil(t, events[0].CommunityNote)
}

func TestFallbackTrendingNoteOnlyWhenRequested(t *testing.T) {
	profile := core.Profile{Name: "sam", Interests: []string{"Sports"}}

	without := Fallback(profile, core.SearchFilters{})
	require.Nil(t, without[0].TrendingNote)
	require.Nil(t, without[0].CommunityNote)

	with := Fallback(profile, core.SearchFilters{
		WantsTrendingSignal:  true,
		WantsHiddenGemSignal: true,
	})
	require.NotNil(t, with[0].TrendingNote)
	require.NotEmpty(t, with[0].TrendingNote.Prediction)
	require.NotNil(t, with[0].CommunityNote)
}

func TestFallbackFoodRuleUsesFirstPreference(t *testing.T) {
	profile := core.Profile{
		Name:            "sam",
		Interests:       []string{"Food"},
		FoodPreferences: []string{"Korean", "Thai"},
	}

	events := Fallback(profile, core.SearchFilters{})

	require.Len(t, events, 3)
	require.Equal(t, "restaurant", events[0].VenueType)
	require.Contains(t, events[0].Description, "korean")
}

func TestFallbackNightlifeRuleTriggersOnSociability(t *testing.T) {
	profile := core.Profile{Name: "sam", Sociability: 7}

	events := Fallback(profile, core.SearchFilters{})

	require.Len(t, events, 3)
	require.Equal(t, "nightclub", events[0].VenueType)
	require.Contains(t, events[0].Description, "open-format")
}

func TestFallbackFullProfileYieldsFiveEvents(t *testing.T) {
	events := Fallback(fullProfile(), core.SearchFilters{})

	require.Len(t, events, 5)
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.VenueType)
	}
	require.Equal(t, []string{"sports_bar", "restaurant", "nightclub", "activity", "social"}, types)
}

func TestFallbackLocationAndBudgetResolution(t *testing.T) {
	profile := core.Profile{Name: "sam", Location: "Queens"}

	// Filter location wins over profile location.
	events := Fallback(profile, core.SearchFilters{Location: "Astoria", Budget: "$$$"})
	require.Contains(t, events[0].LocationAddress, "Astoria")
	require.Equal(t, "$$$", events[0].PriceTier)

	// Profile location when the filter is empty.
	events = Fallback(profile, core.SearchFilters{})
	require.Contains(t, events[0].LocationAddress, "Queens")
	require.Equal(t, "$$", events[0].PriceTier)

	// Default when neither is set.
	events = Fallback(core.Profile{Name: "sam"}, core.SearchFilters{})
	require.Contains(t, events[0].LocationAddress, "Downtown")
}
