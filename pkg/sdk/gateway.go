// Package sdk provides a high-level client for the LaunchCue API.
//
// The Gateway is the single chokepoint for outbound calls: it injects the
// bearer credential, classifies every response, retries transient server
// failures, and raises a one-shot notification when the server definitively
// rejects authentication. The Session layers identity and team state on top.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// attemptTimeout bounds each physical attempt; exceeding it counts as
	// no response received.
	attemptTimeout = 15 * time.Second
	// maxRetries is the retry budget per logical request (3 physical attempts).
	maxRetries = 2
	// backoffBase seeds the exponential backoff, doubling per retry.
	backoffBase = 1000 * time.Millisecond
	// backoffJitterMax is the upper bound of the random jitter added to each
	// computed backoff delay.
	backoffJitterMax = 500 * time.Millisecond
)

// Gateway issues all backend calls. It holds no knowledge of teams, identities,
// or routes beyond the literal path and body given to it.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// sleep is swapped out in tests to observe retry delays.
	sleep func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	credential  *Credentials
	onUnauth    func()
	unauthFired bool
}

// GatewayOption mutates gateway construction.
type GatewayOption func(*Gateway)

// WithHTTPClient overrides the HTTP client used for physical attempts.
func WithHTTPClient(client *http.Client) GatewayOption {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// WithLogger overrides the gateway's logger.
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// NewGateway creates a gateway that communicates with the API server at baseURL.
func NewGateway(baseURL string, opts ...GatewayOption) *Gateway {
	gw := &Gateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: attemptTimeout},
		logger:     slog.Default(),
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(gw)
	}
	return gw
}

// SetCredential replaces the credential attached to all subsequent calls.
// Passing nil clears it. Installing a non-nil credential re-arms the
// unauthenticated notification for the new credential's lifetime.
func (g *Gateway) SetCredential(creds *Credentials) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.credential = creds
	if creds != nil {
		g.unauthFired = false
	}
}

// OnUnauthenticated registers the handler invoked at most once per credential
// lifetime when the server definitively rejects authentication. Registering a
// new handler replaces the previous one.
func (g *Gateway) OnUnauthenticated(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onUnauth = fn
}

// Get issues a GET request against path, decoding the response into out.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body, decoding the response into out.
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body, decoding the response into out.
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request against path.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do performs one logical request, which may span multiple physical attempts
// under the retry policy. On success the JSON response body is decoded into
// out when out is non-nil; on definitive failure a classified *Error is
// returned.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	// One request ID per logical call, stable across retries, so server logs
	// can correlate the physical attempts.
	requestID := uuid.NewString()

	retries := 0
	for {
		status, retryAfter, err := g.attempt(ctx, method, path, query, payload, requestID, out)
		if err == nil {
			return nil
		}
		if !isRetryableStatus(status) || retries >= maxRetries {
			if retries > 0 {
				g.logger.Warn("request failed after retries",
					"method", method, "path", path, "status", status, "attempts", retries+1)
			}
			return err
		}

		delay := retryDelay(status, retryAfter, retries)
		g.logger.Debug("retrying request",
			"method", method, "path", path, "status", status, "retry", retries+1, "delay", delay)
		if sleepErr := g.sleep(ctx, delay); sleepErr != nil {
			return err
		}
		retries++
	}
}

// attempt performs one physical attempt and classifies its outcome. The
// returned status is 0 when no response was received.
func (g *Gateway) attempt(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string, out any) (int, string, error) {
	target, err := url.JoinPath(g.baseURL, path)
	if err != nil {
		return 0, "", fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	// Each attempt reads the credential at dispatch time, so a credential
	// cleared mid-retry is not reused.
	if creds := g.currentCredential(); creds != nil {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, "", &Error{Kind: KindNetwork, Message: "no response received", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return resp.StatusCode, "", &Error{
					Kind:    KindServerRejected,
					Status:  resp.StatusCode,
					Message: "response body could not be decoded",
					cause:   err,
				}
			}
		}
		return resp.StatusCode, "", nil
	}

	raw, _ := io.ReadAll(resp.Body)
	var remote struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &remote)
	message := remote.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		g.fireUnauthenticated()
		return resp.StatusCode, "", &Error{Kind: KindUnauthenticated, Status: resp.StatusCode, Message: message}
	case isRetryableStatus(resp.StatusCode):
		return resp.StatusCode, resp.Header.Get("Retry-After"),
			&Error{Kind: KindTransientServer, Status: resp.StatusCode, Message: message}
	default:
		return resp.StatusCode, "", &Error{Kind: KindServerRejected, Status: resp.StatusCode, Message: message}
	}
}

func (g *Gateway) currentCredential() *Credentials {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.credential
}

// fireUnauthenticated invokes the registered handler unless it already fired
// for the current credential. The check-and-set is a single critical section,
// so concurrent 401s produce exactly one invocation.
func (g *Gateway) fireUnauthenticated() {
	g.mu.Lock()
	fired := g.unauthFired
	g.unauthFired = true
	fn := g.onUnauth
	g.mu.Unlock()

	if !fired && fn != nil {
		fn()
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryDelay computes the wait before the next attempt. A Retry-After hint on
// a 429 is honored literally; otherwise the delay doubles per retry from
// backoffBase, plus random jitter.
func retryDelay(status int, retryAfter string, retries int) time.Duration {
	if status == http.StatusTooManyRequests && retryAfter != "" {
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return backoffBase<<retries + time.Duration(rand.Int63n(int64(backoffJitterMax)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
