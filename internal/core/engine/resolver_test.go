package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/generate"
)

type stubSlotReader struct {
	events []core.GeneratedEvent
	ok     bool
	takes  int
}

func (s *stubSlotReader) Take(_ context.Context) ([]core.GeneratedEvent, bool, error) {
	s.takes++
	events, ok := s.events, s.ok
	s.events, s.ok = nil, false
	return events, ok, nil
}

// instantClock treats short timers as already elapsed and long ones as never
// firing, so pacing stays out of the resolver tests.
type instantClock struct{}

func (instantClock) Now() time.Time {
	return time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
}

func (instantClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time)
	if d < time.Hour {
		close(ch)
	}
	return ch
}

func instantOrchestrator(client Requester) *Orchestrator {
	return &Orchestrator{
		Client:     client,
		MinDisplay: time.Millisecond,
		MaxTimeout: time.Hour,
		Clock:      instantClock{},
	}
}

func errTestRequest(kind core.FailureKind) error {
	return &generate.RequestError{Kind: kind, Message: "stubbed failure"}
}

func TestResolveConsumesHandoffWithoutRequest(t *testing.T) {
	client := &stubRequester{events: sampleEvents()}
	slot := &stubSlotReader{events: sampleEvents(), ok: true}
	r := &Resolver{Slot: slot, Orchestrator: instantOrchestrator(client)}

	set, err := r.Resolve(context.Background(), core.Profile{Name: "sam"}, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceHandoff, set.Source)
	require.Equal(t, sampleEvents(), set.Events)
	require.Equal(t, 0, client.callCount())
}

func TestResolveEmptySlotRerunsDiscovery(t *testing.T) {
	client := &stubRequester{events: sampleEvents()}
	slot := &stubSlotReader{}
	r := &Resolver{Slot: slot, Orchestrator: instantOrchestrator(client)}

	set, err := r.Resolve(context.Background(), core.Profile{Name: "sam"}, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceService, set.Source)
	require.Equal(t, sampleEvents(), set.Events)
	require.Equal(t, 1, slot.takes)
	require.Equal(t, 1, client.callCount())
}

func TestResolveFailedAttemptFallsBackLocally(t *testing.T) {
	client := &stubRequester{err: errTestRequest(core.FailureNetwork)}
	r := &Resolver{Orchestrator: instantOrchestrator(client)}

	profile := core.Profile{Name: "sam", Interests: []string{"Food"}}
	set, err := r.Resolve(context.Background(), profile, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceFallback, set.Source)
	require.Equal(t, core.FailureNetwork, set.Reason)
	require.NotEmpty(t, set.Events)
}

func TestResolveZeroProfileFailureIsEmptyState(t *testing.T) {
	client := &stubRequester{err: errTestRequest(core.FailureHTTP)}
	r := &Resolver{Orchestrator: instantOrchestrator(client)}

	set, err := r.Resolve(context.Background(), core.Profile{}, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceEmpty, set.Source)
	require.Equal(t, core.FailureHTTP, set.Reason)
	require.Empty(t, set.Events)
}

func TestResolveUsesInjectedFallback(t *testing.T) {
	client := &stubRequester{err: errTestRequest(core.FailureEmpty)}
	custom := []core.GeneratedEvent{{ID: "custom"}}
	r := &Resolver{
		Orchestrator: instantOrchestrator(client),
		Fallback: func(core.Profile, core.SearchFilters) []core.GeneratedEvent {
			return custom
		},
	}

	set, err := r.Resolve(context.Background(), core.Profile{Name: "sam"}, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceFallback, set.Source)
	require.Equal(t, custom, set.Events)
}

func TestResolveRepeatTupleDoesNotReissueRequest(t *testing.T) {
	client := &stubRequester{events: sampleEvents()}
	r := &Resolver{Orchestrator: instantOrchestrator(client)}

	profile := core.Profile{Name: "sam"}
	filters := core.SearchFilters{Location: "downtown"}

	first, err := r.Resolve(context.Background(), profile, filters, "tacos")
	require.NoError(t, err)
	require.Equal(t, SourceService, first.Source)

	// The attempt latch trips; the resolved state is read back instead.
	second, err := r.Resolve(context.Background(), profile, filters, "tacos")
	require.NoError(t, err)
	require.Equal(t, SourceService, second.Source)
	require.Equal(t, first.Events, second.Events)
	require.Equal(t, 1, client.callCount())
}

func TestResolveRepeatTupleAfterFailureFallsBack(t *testing.T) {
	client := &stubRequester{err: errTestRequest(core.FailureParse)}
	r := &Resolver{Orchestrator: instantOrchestrator(client)}

	profile := core.Profile{Name: "sam", Location: "downtown"}

	first, err := r.Resolve(context.Background(), profile, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceFallback, first.Source)

	second, err := r.Resolve(context.Background(), profile, core.SearchFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, SourceFallback, second.Source)
	require.Equal(t, core.FailureParse, second.Reason)
	require.Equal(t, 1, client.callCount())
}

func TestResolveDistinctTuplesGetDistinctAttempts(t *testing.T) {
	client := &stubRequester{events: sampleEvents()}
	r := &Resolver{Orchestrator: instantOrchestrator(client)}

	_, err := r.Resolve(context.Background(), core.Profile{Name: "sam"}, core.SearchFilters{}, "tacos")
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), core.Profile{Name: "sam"}, core.SearchFilters{}, "ramen")
	require.NoError(t, err)

	require.Equal(t, 2, client.callCount())
}
