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

// DefaultProfileName is the profile the discover flow uses when no explicit
// profile is supplied.
const DefaultProfileName = "default"

// SaveProfile persists a profile under the given name.
func (s *Store) SaveProfile(ctx context.Context, name string, profile core.Profile) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	key := profileKey(name)
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO profiles (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, key, string(payload), time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}

	return nil
}

// GetProfile loads a stored profile. A missing profile returns (nil, nil).
func (s *Store) GetProfile(ctx context.Context, name string) (*core.ProfileRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		payload   string
		updatedAt int64
	)
	row := s.DB.QueryRowContext(ctx, `SELECT payload, updated_at FROM profiles WHERE name = ?`, profileKey(name))
	if err := row.Scan(&payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	var profile core.Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &core.ProfileRecord{
		Profile:   profile,
		UpdatedAt: time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// DeleteProfile removes a stored profile. Deleting a missing profile is not
// an error.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, profileKey(name)); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func profileKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultProfileName
	}
	return key
}
