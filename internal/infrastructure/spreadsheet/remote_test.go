package spreadsheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-ranking/internal/domain/dataset"
	"github.com/riskibarqy/league-ranking/internal/platform/resilience"
	"github.com/riskibarqy/league-ranking/internal/usecase"
)

func TestRemoteSourceLoad(t *testing.T) {
	t.Parallel()

	snap := smallSnapshot()
	raw := workbookBytes(t, []dataset.Table{snap.Players, snap.Matches, snap.Events}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/liga.xlsx", http.StatusFound)
	})
	mux.HandleFunc("/liga.xlsx", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write(raw)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	src := NewRemoteSource(RemoteConfig{URL: server.URL + "/export", Timeout: 5 * time.Second})
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Source != RemoteSourceName {
		t.Fatalf("unexpected source: %q", got.Source)
	}
	if got.Players.Len() != 2 || got.Events.Len() != 2 {
		t.Fatalf("unexpected row counts: players=%d events=%d", got.Players.Len(), got.Events.Len())
	}
}

func TestRemoteSourceCircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src := NewRemoteSource(RemoteConfig{
		URL:     server.URL,
		Timeout: 5 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	for i := 0; i < 3; i++ {
		_, err := src.Load(context.Background())
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected dependency unavailable, got %v", i, err)
		}
		if i < 2 && (!crerr.Is(err, errRemoteTransient) || !strings.Contains(err.Error(), "status=503")) {
			t.Fatalf("attempt %d: expected the upstream cause to be kept, got %v", i, err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected breaker to stop the third request, server hits=%d", got)
	}
}

func TestRemoteSourceClientErrorDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	src := NewRemoteSource(RemoteConfig{
		URL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
		},
	})

	for i := 0; i < 2; i++ {
		_, err := src.Load(context.Background())
		if err == nil {
			t.Fatalf("expected error for 404")
		}
		if errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("a client error must not be reported as an unavailable dependency: %v", err)
		}
		if !strings.Contains(err.Error(), "status=404") {
			t.Fatalf("expected the upstream status in the error, got %v", err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected both requests to reach the server, hits=%d", got)
	}
}
