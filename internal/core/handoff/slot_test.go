package handoff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vibescout/vibescout/internal/core"
)

func TestTakeDrainsSlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	events := []core.GeneratedEvent{
		{ID: "e1", EventName: "Trivia Night"},
		{ID: "e2", EventName: "Jazz Set"},
	}
	require.NoError(t, slot.Put(ctx, events))

	got, ok, err := slot.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, events, got)

	// The slot clears on read.
	got, ok, err = slot.Take(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestTakeOnEmptySlotReportsNotWritten(t *testing.T) {
	slot := NewMemorySlot()

	got, ok, err := slot.Take(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestPutOverwritesUnconsumedPayload(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	require.NoError(t, slot.Put(ctx, []core.GeneratedEvent{{ID: "stale"}}))
	require.NoError(t, slot.Put(ctx, []core.GeneratedEvent{{ID: "fresh"}}))

	got, ok, err := slot.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "fresh", got[0].ID)
}

func TestPutEmptyListStillCountsAsWritten(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	require.NoError(t, slot.Put(ctx, nil))

	got, ok, err := slot.Take(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, got)
}
