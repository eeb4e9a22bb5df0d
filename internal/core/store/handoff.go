package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/handoff"
)

// HandoffSlot is the store-backed hand-off cell. It survives across process
// boundaries, which is how the slot outlives the navigation between the
// discover and results commands.
type HandoffSlot struct {
	Store *Store
}

var _ handoff.Slot = (*HandoffSlot)(nil)

// Put serializes the event list into the slot row, replacing any unconsumed
// payload from an earlier attempt.
func (h *HandoffSlot) Put(ctx context.Context, events []core.GeneratedEvent) error {
	if h == nil || h.Store == nil || h.Store.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode handoff payload: %w", err)
	}

	_, err = h.Store.DB.ExecContext(ctx, `
		INSERT INTO handoff_slot (key, payload, written_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			written_at = excluded.written_at
	`, handoff.Key, string(payload), time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("write handoff slot: %w", err)
	}

	return nil
}

// Take reads and clears the slot in one transaction. ok=false means no
// hand-off occurred.
func (h *HandoffSlot) Take(ctx context.Context) ([]core.GeneratedEvent, bool, error) {
	if h == nil || h.Store == nil || h.Store.DB == nil {
		return nil, false, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := h.Store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin handoff read: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck // no-op after commit

	var payload string
	row := tx.QueryRowContext(ctx, `SELECT payload FROM handoff_slot WHERE key = ?`, handoff.Key)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read handoff slot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM handoff_slot WHERE key = ?`, handoff.Key); err != nil {
		return nil, false, fmt.Errorf("clear handoff slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit handoff read: %w", err)
	}

	var events []core.GeneratedEvent
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return nil, false, fmt.Errorf("decode handoff payload: %w", err)
	}

	return events, true, nil
}
