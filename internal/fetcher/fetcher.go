// Package fetcher retrieves the remote stream catalogue with retry and
// backoff handling.
package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"streamseo/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// maxBodyBytes caps the response body; a sports catalogue is far below this.
const maxBodyBytes = 10 << 20

// Fetcher performs HTTP fetches of the catalogue with config-driven retry.
type Fetcher struct {
	client *http.Client
	retry  *config.RetryPolicy
}

// New creates a fetcher with the given retry policy.
func New(retry *config.RetryPolicy) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: retry.GetTimeout(),
		},
		retry: retry,
	}
}

// FetchWithMetrics returns (body, statusCode, totalDuration, error).
func (f *Fetcher) FetchWithMetrics(url string) ([]byte, int, time.Duration, error) {
	var lastErr error

	var lastStatusCode int

	totalDuration := time.Duration(0)

	for attempt := 1; attempt <= f.retry.MaxAttempts; attempt++ {
		startTime := time.Now()

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)

			continue
		}

		req.Header.Set("User-Agent", "streamseo/1.0")
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		duration := time.Since(startTime)
		totalDuration += duration

		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, f.retry.MaxAttempts, err)

			f.backoff(attempt)

			continue
		}

		lastStatusCode = resp.StatusCode

		if resp.StatusCode != http.StatusOK {
			drainAndClose(resp)

			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			// Client errors like 404 will not heal on retry.
			if !isRetryableStatus(resp.StatusCode) {
				break
			}

			f.backoff(attempt)

			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		closeErr := resp.Body.Close()

		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)

			continue
		}

		if closeErr != nil {
			lastErr = fmt.Errorf("failed to close response body: %w", closeErr)

			continue
		}

		return body, resp.StatusCode, totalDuration, nil
	}

	return nil, lastStatusCode, totalDuration, lastErr
}

// Fetch returns the catalogue body for the given URL.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	body, _, _, err := f.FetchWithMetrics(url)

	return body, err
}

// ReadLocalFile reads a catalogue snapshot from disk.
func (f *Fetcher) ReadLocalFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file %s: %w", path, err)
	}

	return data, nil
}

// backoff sleeps before the attempt following the just-failed one, so
// the first retry waits the initial delay of the schedule.
func (f *Fetcher) backoff(attempt int) {
	if attempt >= f.retry.MaxAttempts {
		return
	}

	if delay := f.retry.GetRetryDelay(attempt + 1); delay > 0 {
		time.Sleep(delay)
	}
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
