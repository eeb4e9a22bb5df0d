package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vibescout/vibescout/internal/core"
)

const createEventsPath = "/api/events/create"

// Client performs the single generation request against the event service.
// One attempt, no retries: the orchestrator's timeout semantics depend on
// this contract.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewClient returns a client with defaults applied.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSpace(baseURL),
	}
}

type generationRequest struct {
	Profile     core.Profile       `json:"profile"`
	Filters     core.SearchFilters `json:"filters"`
	SearchQuery string             `json:"searchQuery,omitempty"`
}

type generationResponse struct {
	Success bool                  `json:"success"`
	Events  []core.GeneratedEvent `json:"events"`
	Error   string                `json:"error"`
}

// Generate sends one generation request and returns the event list. Every
// failure mode comes back as a *RequestError; a success with zero events is
// a failure of kind empty.
func (c *Client) Generate(ctx context.Context, profile core.Profile, filters core.SearchFilters, searchQuery string) ([]core.GeneratedEvent, error) {
	if c == nil || strings.TrimSpace(c.BaseURL) == "" {
		return nil, errors.New("generation client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := withTimeout(ctx, c.Timeout)
	if cancel != nil {
		defer cancel()
	}

	body, err := json.Marshal(generationRequest{
		Profile:     profile,
		Filters:     filters,
		SearchQuery: strings.TrimSpace(searchQuery),
	})
	if err != nil {
		return nil, parseError(err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + createEventsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, networkError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Non-2xx bodies are not guaranteed to be JSON; carry them verbatim.
		return nil, httpError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed generationResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, parseError(err)
	}

	if !parsed.Success {
		message := strings.TrimSpace(parsed.Error)
		if message == "" {
			message = "service reported failure without detail"
		}
		return nil, serviceError(message)
	}

	if len(parsed.Events) == 0 {
		return nil, emptyError()
	}

	return parsed.Events, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, nil
	}
	return context.WithTimeout(ctx, timeout)
}
