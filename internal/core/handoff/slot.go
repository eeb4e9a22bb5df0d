// Package handoff implements the transient slot that carries a discovery
// attempt's result across the navigation boundary. Single writer, single
// reader-then-clear: the write happens before navigation and the read after,
// so the two never race.
package handoff

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vibescout/vibescout/internal/core"
)

// Key is the fixed slot key the results flow looks for.
const Key = "generatedEvents"

// Slot is a single-write, single-read-then-clear cell holding the
// JSON-serialized event list. Take reports ok=false when no hand-off
// occurred, which tells the results flow to re-run discovery itself.
type Slot interface {
	Put(ctx context.Context, events []core.GeneratedEvent) error
	Take(ctx context.Context) ([]core.GeneratedEvent, bool, error)
}

// MemorySlot keeps the payload in process memory, scoped to one navigation
// lifetime.
type MemorySlot struct {
	mu      sync.Mutex
	payload []byte
	written bool
}

// NewMemorySlot returns an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Put serializes the list into the slot. A later attempt overwrites an
// unconsumed payload; within one attempt Put is called at most once.
func (s *MemorySlot) Put(_ context.Context, events []core.GeneratedEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = data
	s.written = true
	return nil
}

// Take drains the slot. The second Take after a single Put reports ok=false.
func (s *MemorySlot) Take(_ context.Context) ([]core.GeneratedEvent, bool, error) {
	s.mu.Lock()
	data, written := s.payload, s.written
	s.payload = nil
	s.written = false
	s.mu.Unlock()

	if !written {
		return nil, false, nil
	}

	var events []core.GeneratedEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, err
	}
	return events, true, nil
}
