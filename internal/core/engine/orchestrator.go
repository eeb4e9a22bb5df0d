package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/generate"
)

// Default pacing for a discovery attempt. The minimum display duration is a
// UX invariant, not a best effort; the maximum timeout guarantees the user
// is never parked on a loading state.
const (
	DefaultMinDisplay = 5 * time.Second
	DefaultMaxTimeout = 45 * time.Second
)

// ErrAttemptStarted is returned when an attempt is activated a second time.
// The latch makes re-entrant activation harmless: no second request is ever
// issued for the same attempt.
var ErrAttemptStarted = errors.New("discovery attempt already started")

// Requester issues the single generation request. *generate.Client satisfies
// it; tests substitute stubs.
type Requester interface {
	Generate(ctx context.Context, profile core.Profile, filters core.SearchFilters, searchQuery string) ([]core.GeneratedEvent, error)
}

// HandoffWriter receives the resolved event list before navigation.
type HandoffWriter interface {
	Put(ctx context.Context, events []core.GeneratedEvent) error
}

// EventCache lets resolved attempts be replayed without a network call.
// Cache hits still honor the minimum display window.
type EventCache interface {
	GetEvents(ctx context.Context, key string) ([]core.GeneratedEvent, error)
	SetEvents(ctx context.Context, key string, events []core.GeneratedEvent, ttl time.Duration) error
}

// Orchestrator drives discovery attempts: one request raced against a
// minimum-display timer and a maximum timeout, then a hand-off.
type Orchestrator struct {
	Client     Requester
	Slot       HandoffWriter
	Cache      EventCache
	CacheTTL   time.Duration
	MinDisplay time.Duration
	MaxTimeout time.Duration
	Clock      Clock
}

// Attempt is one discovery attempt for a fixed profile+filters+query tuple.
// It is terminal once resolved and never reused; a new tuple means a new
// attempt. The latch lives here, not in package state.
type Attempt struct {
	mu      sync.Mutex
	started bool
	state   core.AttemptState
	events  []core.GeneratedEvent
	reason  core.FailureKind
	err     error

	profile     core.Profile
	filters     core.SearchFilters
	searchQuery string
	key         string
}

// NewAttempt creates an unstarted attempt for the given inputs.
func (o *Orchestrator) NewAttempt(profile core.Profile, filters core.SearchFilters, searchQuery string) *Attempt {
	return &Attempt{
		state:       core.AttemptNotStarted,
		profile:     profile,
		filters:     filters,
		searchQuery: searchQuery,
		key:         core.AttemptKey(profile, filters, searchQuery),
	}
}

// Key identifies the attempt's input tuple.
func (a *Attempt) Key() string {
	return a.key
}

// State returns the attempt's current lifecycle state.
func (a *Attempt) State() core.AttemptState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Events returns a copy of the resolved event list.
func (a *Attempt) Events() []core.GeneratedEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]core.GeneratedEvent, len(a.events))
	copy(out, a.events)
	return out
}

// Reason returns the failure classification for a failed attempt.
func (a *Attempt) Reason() core.FailureKind {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reason
}

// begin is the single-use latch: true exactly once.
func (a *Attempt) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return false
	}
	a.started = true
	a.state = core.AttemptInFlight
	return true
}

func (a *Attempt) finish(state core.AttemptState, events []core.GeneratedEvent, reason core.FailureKind, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = state
	a.events = events
	a.reason = reason
	a.err = err
}

// Outcome is the user-visible result of one attempt.
type Outcome struct {
	State      core.AttemptState
	Events     []core.GeneratedEvent
	Reason     core.FailureKind
	Err        error
	Navigation string
	HandedOff  bool
	HandoffErr error
	FromCache  bool
	StartedAt  time.Time
	ResolvedAt time.Time
}

type requestResult struct {
	events    []core.GeneratedEvent
	err       error
	fromCache bool
}

// Discover creates and runs a fresh attempt.
func (o *Orchestrator) Discover(ctx context.Context, profile core.Profile, filters core.SearchFilters, searchQuery string) (*Outcome, error) {
	return o.Run(ctx, o.NewAttempt(profile, filters, searchQuery))
}

// Run drives an attempt to its terminal state. Exactly one network call is
// issued per attempt; re-running returns ErrAttemptStarted. Context
// cancellation is teardown: pending timers are abandoned and no hand-off
// happens.
//
// Ordering: whichever of {request settled, max timeout} happens first decides
// the outcome, but the outcome is not released before the minimum-display
// timer fires, unless the max timeout fires first, which always wins,
// including the misconfigured max < min case.
func (o *Orchestrator) Run(ctx context.Context, attempt *Attempt) (*Outcome, error) {
	if o == nil || attempt == nil {
		return nil, errors.New("orchestrator is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if !attempt.begin() {
		return nil, ErrAttemptStarted
	}

	clock := o.clock()
	startedAt := clock.Now()
	minCh := clock.After(o.minDisplay())
	maxCh := clock.After(o.maxTimeout())

	resultCh := make(chan requestResult, 1)
	go o.issueRequest(ctx, attempt, resultCh)

	var (
		res      requestResult
		timedOut bool
	)
	select {
	case res = <-resultCh:
	case <-maxCh:
		timedOut = true
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if !timedOut {
		// Hold the result until the minimum display window closes. The max
		// timeout can still unblock the wait early; the data is kept since
		// the request already resolved.
		select {
		case <-minCh:
		case <-maxCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	outcome := &Outcome{
		Navigation: core.ResultsURL(attempt.searchQuery, attempt.filters),
		FromCache:  res.fromCache,
		StartedAt:  startedAt,
		ResolvedAt: clock.Now(),
	}

	switch {
	case timedOut:
		outcome.State = core.AttemptFailed
		outcome.Reason = core.FailureTimeout
		outcome.Err = &generate.RequestError{
			Kind:    core.FailureTimeout,
			Message: "maximum timeout elapsed before the request resolved",
		}
	case res.err != nil:
		outcome.State = core.AttemptFailed
		outcome.Reason = generate.FailureKindOf(res.err)
		outcome.Err = res.err
	default:
		outcome.State = core.AttemptSucceeded
		outcome.Events = res.events
	}

	attempt.finish(outcome.State, outcome.Events, outcome.Reason, outcome.Err)

	if outcome.State == core.AttemptSucceeded {
		if o.Cache != nil && !res.fromCache && o.CacheTTL > 0 {
			_ = o.Cache.SetEvents(ctx, attempt.key, outcome.Events, o.CacheTTL)
		}
		if o.Slot != nil {
			if err := o.Slot.Put(ctx, outcome.Events); err != nil {
				outcome.HandoffErr = err
			} else {
				outcome.HandedOff = true
			}
		}
	}

	return outcome, nil
}

func (o *Orchestrator) issueRequest(ctx context.Context, attempt *Attempt, out chan<- requestResult) {
	if o.Cache != nil {
		if events, err := o.Cache.GetEvents(ctx, attempt.key); err == nil && len(events) > 0 {
			out <- requestResult{events: events, fromCache: true}
			return
		}
	}

	if o.Client == nil {
		out <- requestResult{err: errors.New("generation client is not configured")}
		return
	}

	events, err := o.Client.Generate(ctx, attempt.profile, attempt.filters, attempt.searchQuery)
	out <- requestResult{events: events, err: err}
}

func (o *Orchestrator) clock() Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return SystemClock()
}

func (o *Orchestrator) minDisplay() time.Duration {
	if o.MinDisplay > 0 {
		return o.MinDisplay
	}
	return DefaultMinDisplay
}

func (o *Orchestrator) maxTimeout() time.Duration {
	if o.MaxTimeout > 0 {
		return o.MaxTimeout
	}
	return DefaultMaxTimeout
}
