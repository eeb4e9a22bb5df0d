package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vibescout/vibescout/internal/core"
)

// GetEvents returns a cached attempt result if it is still valid.
func (s *Store) GetEvents(ctx context.Context, attemptKey string) ([]core.GeneratedEvent, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	key := strings.TrimSpace(attemptKey)
	if key == "" {
		return nil, errors.New("attempt key is required")
	}

	var payload string
	row := s.DB.QueryRowContext(ctx, `
		SELECT payload FROM event_cache
		WHERE attempt_key = ? AND expires_at > ?
	`, key, time.Now().UTC().Unix())

	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch cached events: %w", err)
	}

	var events []core.GeneratedEvent
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return nil, fmt.Errorf("decode cached events: %w", err)
	}

	return events, nil
}

// SetEvents stores a resolved attempt with a TTL.
func (s *Store) SetEvents(ctx context.Context, attemptKey string, events []core.GeneratedEvent, ttl time.Duration) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if ttl <= 0 || len(events) == 0 {
		return nil
	}

	key := strings.TrimSpace(attemptKey)
	if key == "" {
		return errors.New("attempt key is required")
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode cached events: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO event_cache (attempt_key, payload, created_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(attempt_key) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at
	`, key, string(payload), now.Unix(), now.Add(ttl).Unix())
	if err != nil {
		return fmt.Errorf("store cached events: %w", err)
	}

	return nil
}

// PruneExpired removes cache rows past their TTL.
func (s *Store) PruneExpired(ctx context.Context) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM event_cache WHERE expires_at <= ?`, time.Now().UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("prune event cache: %w", err)
	}

	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return pruned, nil
}
