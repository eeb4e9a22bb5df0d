package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/carousel"
	"github.com/vibescout/vibescout/internal/core/engine"
	apperrors "github.com/vibescout/vibescout/internal/errors"
	"github.com/vibescout/vibescout/internal/metrics"
)

// ProfileLoader fetches a stored profile by name. *store.Store satisfies it.
type ProfileLoader interface {
	GetProfile(ctx context.Context, name string) (*core.ProfileRecord, error)
}

// Discovery wires the discovery flow into HTTP handlers.
type Discovery struct {
	Profiles     ProfileLoader
	Orchestrator *engine.Orchestrator
	Resolver     *engine.Resolver
}

// DiscoverRequest is the POST /api/discovery body. The profile may be sent
// inline or referenced by name; an inline profile wins.
type DiscoverRequest struct {
	Profile     *core.Profile      `json:"profile,omitempty"`
	ProfileName string             `json:"profileName,omitempty"`
	Filters     core.SearchFilters `json:"filters"`
	SearchQuery string             `json:"searchQuery,omitempty"`
}

// DiscoverResponse reports the terminal state of one attempt.
type DiscoverResponse struct {
	State      string                `json:"state"`
	Navigation string                `json:"navigation"`
	HandedOff  bool                  `json:"handedOff"`
	FromCache  bool                  `json:"fromCache"`
	Events     []core.GeneratedEvent `json:"events,omitempty"`
	Failure    *FailureInfo          `json:"failure,omitempty"`
}

// FailureInfo classifies a failed attempt for the caller.
type FailureInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// ResultsResponse is the GET /api/results payload.
type ResultsResponse struct {
	Source    string                `json:"source"`
	Reason    string                `json:"reason,omitempty"`
	Events    []core.GeneratedEvent `json:"events"`
	PageCount int                   `json:"pageCount"`
}

// DiscoverHandler runs a single discovery attempt and reports its outcome.
func (d *Discovery) DiscoverHandler(w http.ResponseWriter, r *http.Request) {
	if d == nil || d.Orchestrator == nil {
		respondWithError(w, r, apperrors.NewInternalError("discovery flow is not configured"))
		return
	}

	var req DiscoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "request body must be valid JSON"))
		return
	}

	profile, err := d.resolveProfile(r.Context(), req.Profile, req.ProfileName)
	if err != nil {
		respondWithError(w, r, apperrors.WrapDatabaseError(r.Context(), err, "stored profile could not be loaded"))
		return
	}

	outcome, err := d.Orchestrator.Discover(r.Context(), profile, req.Filters, req.SearchQuery)
	if errors.Is(err, engine.ErrAttemptStarted) {
		respondWithError(w, r, apperrors.NewInvalidInputError("attempt already in flight"))
		return
	}
	if err != nil {
		respondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "discovery attempt did not resolve"))
		return
	}

	recordOutcome(outcome)

	response := DiscoverResponse{
		State:      outcome.State.String(),
		Navigation: outcome.Navigation,
		HandedOff:  outcome.HandedOff,
		FromCache:  outcome.FromCache,
		Events:     outcome.Events,
	}
	if outcome.State == core.AttemptFailed {
		response.Failure = &FailureInfo{Kind: string(outcome.Reason)}
		if outcome.Err != nil {
			response.Failure.Message = outcome.Err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// ResultsHandler resolves the results surface: drained hand-off, re-run, or
// local fallback.
func (d *Discovery) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	if d == nil || d.Resolver == nil {
		respondWithError(w, r, apperrors.NewInternalError("results flow is not configured"))
		return
	}

	searchQuery, filters := core.ParseResultsQuery(r.URL.Query())

	profile, err := d.resolveProfile(r.Context(), nil, r.URL.Query().Get("profile"))
	if err != nil {
		respondWithError(w, r, apperrors.WrapDatabaseError(r.Context(), err, "stored profile could not be loaded"))
		return
	}

	set, err := d.Resolver.Resolve(r.Context(), profile, filters, searchQuery)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "results could not be resolved"))
		return
	}

	if set.Source == engine.SourceFallback {
		metrics.RecordFallback(string(set.Reason))
	}

	response := ResultsResponse{
		Source:    string(set.Source),
		Reason:    string(set.Reason),
		Events:    set.Events,
		PageCount: carousel.New(set.Events).PageCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

func (d *Discovery) resolveProfile(ctx context.Context, inline *core.Profile, name string) (core.Profile, error) {
	if inline != nil {
		return *inline, nil
	}
	if d.Profiles == nil {
		return core.Profile{}, nil
	}

	record, err := d.Profiles.GetProfile(ctx, name)
	if err != nil {
		return core.Profile{}, err
	}
	if record == nil {
		return core.Profile{}, nil
	}
	return record.Profile, nil
}

func recordOutcome(outcome *engine.Outcome) {
	duration := outcome.ResolvedAt.Sub(outcome.StartedAt)
	if duration < 0 {
		duration = 0
	}

	metrics.RecordAttempt(outcome.State.String(), duration)
	metrics.RecordCacheLookup(outcome.FromCache)
	if outcome.State == core.AttemptSucceeded {
		metrics.RecordHandoff(outcome.HandedOff)
	}
}
