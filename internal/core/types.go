package core

import (
	"net/url"
	"strings"
	"time"
)

// AttemptState tracks the lifecycle of a single discovery attempt.
type AttemptState int

const (
	AttemptNotStarted AttemptState = 0
	AttemptInFlight   AttemptState = 1
	AttemptSucceeded  AttemptState = 2
	AttemptFailed     AttemptState = 3
)

// String returns the wire label for an attempt state.
func (s AttemptState) String() string {
	switch s {
	case AttemptInFlight:
		return "in_flight"
	case AttemptSucceeded:
		return "succeeded"
	case AttemptFailed:
		return "failed"
	default:
		return "not_started"
	}
}

// FailureKind classifies why a discovery attempt failed.
type FailureKind string

const (
	FailureNetwork FailureKind = "network"
	FailureHTTP    FailureKind = "http"
	FailureParse   FailureKind = "parse"
	FailureEmpty   FailureKind = "empty"
	FailureTimeout FailureKind = "timeout"
)

// SearchFilters parameterize one discovery attempt. Immutable per attempt.
type SearchFilters struct {
	GroupSize            string `json:"groupSize"`
	Location             string `json:"location"`
	Budget               string `json:"budget"`
	WantsTrendingSignal  bool   `json:"wantsTrendingSignal"`
	WantsHiddenGemSignal bool   `json:"wantsHiddenGemSignal"`
}

// Profile describes the user the suggestions are generated for. It is
// created upstream and consumed read-only by this package.
type Profile struct {
	Name            string            `json:"name"`
	Age             int               `json:"age,omitempty"`
	Location        string            `json:"location,omitempty"`
	Interests       []string          `json:"interests,omitempty"`
	SportsTeams     map[string]string `json:"sportsTeams,omitempty"`
	FoodPreferences []string          `json:"foodPreferences,omitempty"`
	MusicGenres     []string          `json:"musicGenres,omitempty"`
	Sociability     int               `json:"sociability,omitempty"`
	VibeTags        []string          `json:"vibeTags,omitempty"`
}

// IsZero reports whether the profile carries no usable signal. The results
// flow renders an empty state instead of synthesizing from a zero profile.
func (p Profile) IsZero() bool {
	return p.Name == "" && p.Location == "" &&
		len(p.Interests) == 0 && len(p.SportsTeams) == 0 &&
		len(p.FoodPreferences) == 0 && len(p.MusicGenres) == 0 &&
		p.Sociability == 0 && len(p.VibeTags) == 0
}

// HasInterest reports whether the profile lists the interest, ignoring case.
func (p Profile) HasInterest(interest string) bool {
	for _, candidate := range p.Interests {
		if strings.EqualFold(strings.TrimSpace(candidate), interest) {
			return true
		}
	}
	return false
}

// TrendingNote is attached to an event only when the trending signal was
// requested.
type TrendingNote struct {
	Prediction string `json:"prediction"`
	Notes      string `json:"notes"`
}

// CommunityNote is attached to an event only when the hidden-gem signal was
// requested.
type CommunityNote struct {
	Notes string `json:"notes"`
}

// Review is a community review shown on an event card.
type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

// GeneratedEvent is one suggestion. The remote service and the fallback
// generator both produce this exact shape; the results surfaces depend on
// that unconditionally.
type GeneratedEvent struct {
	ID                string         `json:"id"`
	LocationName      string         `json:"locationName"`
	LocationAddress   string         `json:"locationAddress"`
	EventName         string         `json:"eventName"`
	Description       string         `json:"description"`
	Vibes             []string       `json:"vibes"`
	IsPartnerVenue    bool           `json:"isPartnerVenue"`
	PriceTier         string         `json:"priceTier"`
	EstimatedDistance string         `json:"estimatedDistance"`
	ImagePath         string         `json:"imagePath"`
	VenueType         string         `json:"venueType"`
	TrendingNote      *TrendingNote  `json:"trendingNote"`
	CommunityNote     *CommunityNote `json:"communityNote"`
	CommunityRating   float64        `json:"communityRating"`
	Reviews           []Review       `json:"reviews"`
}

// Query parameter names for the results navigation contract. The destination
// carries the free-text query and every filter field so it can re-run
// discovery when the hand-off slot is empty.
const (
	QueryParamSearch     = "q"
	QueryParamGroupSize  = "group_size"
	QueryParamLocation   = "location"
	QueryParamBudget     = "budget"
	QueryParamTrending   = "trending"
	QueryParamHiddenGems = "hidden_gems"
)

// ResultsPath is the navigation destination for a finished attempt.
const ResultsPath = "/results"

// BuildResultsQuery encodes the discovery context into navigation query
// parameters.
func BuildResultsQuery(searchQuery string, filters SearchFilters) url.Values {
	values := url.Values{}
	if searchQuery != "" {
		values.Set(QueryParamSearch, searchQuery)
	}
	if filters.GroupSize != "" {
		values.Set(QueryParamGroupSize, filters.GroupSize)
	}
	if filters.Location != "" {
		values.Set(QueryParamLocation, filters.Location)
	}
	if filters.Budget != "" {
		values.Set(QueryParamBudget, filters.Budget)
	}
	if filters.WantsTrendingSignal {
		values.Set(QueryParamTrending, "1")
	}
	if filters.WantsHiddenGemSignal {
		values.Set(QueryParamHiddenGems, "1")
	}
	return values
}

// ParseResultsQuery reconstructs the discovery context from navigation query
// parameters. The inverse of BuildResultsQuery.
func ParseResultsQuery(values url.Values) (string, SearchFilters) {
	filters := SearchFilters{
		GroupSize:            values.Get(QueryParamGroupSize),
		Location:             values.Get(QueryParamLocation),
		Budget:               values.Get(QueryParamBudget),
		WantsTrendingSignal:  parseFlag(values.Get(QueryParamTrending)),
		WantsHiddenGemSignal: parseFlag(values.Get(QueryParamHiddenGems)),
	}
	return values.Get(QueryParamSearch), filters
}

// ResultsURL renders the full navigation target for an attempt.
func ResultsURL(searchQuery string, filters SearchFilters) string {
	query := BuildResultsQuery(searchQuery, filters).Encode()
	if query == "" {
		return ResultsPath
	}
	return ResultsPath + "?" + query
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ProfileRecord wraps a stored profile with persistence metadata.
type ProfileRecord struct {
	Profile   Profile
	UpdatedAt time.Time
}
