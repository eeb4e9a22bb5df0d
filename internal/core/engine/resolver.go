package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/generate"
)

// ResultSource records how a result set was obtained.
type ResultSource string

const (
	SourceHandoff  ResultSource = "handoff"
	SourceService  ResultSource = "service"
	SourceFallback ResultSource = "fallback"
	SourcePending  ResultSource = "pending"
	SourceEmpty    ResultSource = "empty"
)

// ResultSet is what the results surface renders.
type ResultSet struct {
	Events []core.GeneratedEvent
	Source ResultSource
	Reason core.FailureKind
}

// Resolver is the destination-side flow: consume the hand-off if one
// happened, otherwise re-run discovery guarded by the same per-attempt
// latch semantics. Failed attempts always fall back locally, one policy
// for every entry point.
type Resolver struct {
	Slot         SlotReader
	Orchestrator *Orchestrator
	Fallback     func(core.Profile, core.SearchFilters) []core.GeneratedEvent

	mu       sync.Mutex
	attempts map[string]*Attempt
}

// SlotReader drains the transient hand-off slot.
type SlotReader interface {
	Take(ctx context.Context) ([]core.GeneratedEvent, bool, error)
}

// Resolve produces the final event list for the results surface.
func (r *Resolver) Resolve(ctx context.Context, profile core.Profile, filters core.SearchFilters, searchQuery string) (*ResultSet, error) {
	if r == nil || r.Orchestrator == nil {
		return nil, errors.New("resolver is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if r.Slot != nil {
		events, ok, err := r.Slot.Take(ctx)
		if err == nil && ok && len(events) > 0 {
			return &ResultSet{Events: events, Source: SourceHandoff}, nil
		}
	}

	attempt := r.attemptFor(profile, filters, searchQuery)
	outcome, err := r.Orchestrator.Run(ctx, attempt)
	if errors.Is(err, ErrAttemptStarted) {
		// A sibling activation already owns this attempt; read its state
		// instead of issuing a second request.
		return r.fromAttempt(attempt, profile, filters), nil
	}
	if err != nil {
		return nil, err
	}

	if outcome.State == core.AttemptSucceeded {
		return &ResultSet{Events: outcome.Events, Source: SourceService}, nil
	}

	return r.fallbackSet(profile, filters, outcome.Reason), nil
}

func (r *Resolver) attemptFor(profile core.Profile, filters core.SearchFilters, searchQuery string) *Attempt {
	key := core.AttemptKey(profile, filters, searchQuery)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attempts == nil {
		r.attempts = make(map[string]*Attempt)
	}
	if attempt, ok := r.attempts[key]; ok {
		return attempt
	}
	attempt := r.Orchestrator.NewAttempt(profile, filters, searchQuery)
	r.attempts[key] = attempt
	return attempt
}

func (r *Resolver) fromAttempt(attempt *Attempt, profile core.Profile, filters core.SearchFilters) *ResultSet {
	switch attempt.State() {
	case core.AttemptSucceeded:
		return &ResultSet{Events: attempt.Events(), Source: SourceService}
	case core.AttemptFailed:
		return r.fallbackSet(profile, filters, attempt.Reason())
	default:
		return &ResultSet{Source: SourcePending}
	}
}

func (r *Resolver) fallbackSet(profile core.Profile, filters core.SearchFilters, reason core.FailureKind) *ResultSet {
	if profile.IsZero() {
		return &ResultSet{Source: SourceEmpty, Reason: reason}
	}

	synthesize := r.Fallback
	if synthesize == nil {
		synthesize = generate.Fallback
	}

	return &ResultSet{
		Events: synthesize(profile, filters),
		Source: SourceFallback,
		Reason: reason,
	}
}
