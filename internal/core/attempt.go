package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// AttemptKey derives a stable identity for a profile+filters+query tuple.
// Two attempts with identical inputs share a key; the cache and the results
// resolver latch on it. Map keys are sorted by the JSON encoder, so the key
// is deterministic.
func AttemptKey(profile Profile, filters SearchFilters, searchQuery string) string {
	payload := struct {
		Profile Profile       `json:"profile"`
		Filters SearchFilters `json:"filters"`
		Query   string        `json:"query"`
	}{
		Profile: profile,
		Filters: filters,
		Query:   strings.TrimSpace(searchQuery),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		// Profile and SearchFilters contain only marshalable fields; this
		// path is unreachable in practice.
		return ""
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
