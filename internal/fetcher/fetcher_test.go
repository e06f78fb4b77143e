package fetcher

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"streamseo/internal/config"
)

func testRetryPolicy() *config.RetryPolicy {
	return &config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    0,
		MaxDelayMs:        0,
		BackoffMultiplier: 1.0,
		TimeoutSec:        5,
	}
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}

		if got := r.Header.Get("User-Agent"); got != "streamseo/1.0" {
			t.Errorf("User-Agent = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":{"streams":[]}}`))
	}))
	defer server.Close()

	f := New(testRetryPolicy())

	body, err := f.Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if string(body) != `{"events":{"streams":[]}}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestFetcher_RetriesOnServiceUnavailable(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	f := New(testRetryPolicy())

	body, status, _, err := f.FetchWithMetrics(server.URL)
	if err != nil {
		t.Fatalf("FetchWithMetrics failed after retries: %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}

	if string(body) != `{"ok":true}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestFetcher_FirstRetryWaitsInitialDelay(t *testing.T) {
	var gotRetry atomic.Bool

	var firstAt, retryAt time.Time

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if firstAt.IsZero() {
			firstAt = time.Now()

			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		retryAt = time.Now()
		gotRetry.Store(true)

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	f := New(&config.RetryPolicy{
		MaxAttempts:       2,
		InitialDelayMs:    150,
		MaxDelayMs:        1000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        5,
	})

	if _, err := f.Fetch(server.URL); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !gotRetry.Load() {
		t.Fatal("expected a retry request")
	}

	if gap := retryAt.Sub(firstAt); gap < 150*time.Millisecond {
		t.Errorf("first retry fired after %v, want >= 150ms initial delay", gap)
	}
}

func TestFetcher_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := New(testRetryPolicy())

	_, status, _, err := f.FetchWithMetrics(server.URL)
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}

	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Errorf("error = %v, want ErrUnexpectedStatusCode", err)
	}

	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}

	if calls.Load() != 3 {
		t.Errorf("calls = %d, want all 3 attempts", calls.Load())
	}
}

func TestFetcher_NotFoundFailsFast(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := New(testRetryPolicy())

	_, err := f.Fetch(server.URL)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Fatalf("error = %v, want ErrUnexpectedStatusCode", err)
	}

	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (404 is not retryable)", calls.Load())
	}
}

func TestFetcher_ReadLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")

	if err := os.WriteFile(path, []byte(`{"events":{"streams":[]}}`), 0644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	f := New(testRetryPolicy())

	data, err := f.ReadLocalFile(path)
	if err != nil {
		t.Fatalf("ReadLocalFile failed: %v", err)
	}

	if len(data) == 0 {
		t.Error("expected file contents")
	}

	if _, err := f.ReadLocalFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
