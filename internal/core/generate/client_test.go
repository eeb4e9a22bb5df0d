package generate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibescout/vibescout/internal/core"
)

func TestGenerateSuccess(t *testing.T) {
	var gotPath string
	var gotRequest generationRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		_ = json.NewEncoder(w).Encode(generationResponse{
			Success: true,
			Events: []core.GeneratedEvent{
				{ID: "e1", EventName: "Trivia Night"},
				{ID: "e2", EventName: "Jazz Set"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	events, err := client.Generate(context.Background(),
		core.Profile{Name: "sam"},
		core.SearchFilters{Location: "downtown"},
		"  live music  ")

	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "/api/events/create", gotPath)
	require.Equal(t, "sam", gotRequest.Profile.Name)
	require.Equal(t, "downtown", gotRequest.Filters.Location)
	require.Equal(t, "live music", gotRequest.SearchQuery)
}

func TestGenerateNonSuccessStatusIsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, core.FailureHTTP, reqErr.Kind)
	require.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	require.Equal(t, "upstream exploded", reqErr.Message)
}

func TestGenerateMalformedBodyIsParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	require.Equal(t, core.FailureParse, FailureKindOf(err))
}

func TestGenerateServiceReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generationResponse{Success: false, Error: "model unavailable"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, core.FailureHTTP, reqErr.Kind)
	require.Equal(t, "model unavailable", reqErr.Message)
}

func TestGenerateZeroEventsIsEmptyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generationResponse{Success: true})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	require.Equal(t, core.FailureEmpty, FailureKindOf(err))
}

func TestGenerateConnectionRefusedIsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the request fires

	_, err := NewClient(srv.URL).Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	require.Equal(t, core.FailureNetwork, FailureKindOf(err))
}

func TestGenerateHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect;
		// otherwise r.Context() is never canceled and Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.Timeout = 20 * time.Millisecond

	_, err := client.Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")

	require.Error(t, err)
	require.Equal(t, core.FailureNetwork, FailureKindOf(err))
}

func TestGenerateRequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ").Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")
	require.Error(t, err)

	var nilClient *Client
	_, err = nilClient.Generate(context.Background(), core.Profile{}, core.SearchFilters{}, "")
	require.Error(t, err)
}

func TestFailureKindOfForeignError(t *testing.T) {
	require.Equal(t, core.FailureNetwork, FailureKindOf(errors.New("boom")))
	require.Equal(t, core.FailureKind(""), FailureKindOf(nil))
}
