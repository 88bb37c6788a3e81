package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleep replaces the gateway's retry sleep so tests finish instantly
// and can assert on the computed delays.
func recordingSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	var mu sync.Mutex
	return func(_ context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		*delays = append(*delays, d)
		return nil
	}
}

func futureCredential() *Credentials {
	return &Credentials{Token: "test-token", ExpiresAt: time.Now().Add(time.Hour)}
}

func TestDoRetriesTransientFailuresExactlyTwice(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	var delays []time.Duration
	gw := NewGateway(ts.URL)
	gw.sleep = recordingSleep(&delays)

	err := gw.Get(context.Background(), "/projects", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindTransientServer, KindOf(err))
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts), "2 retries means 3 physical attempts")
	require.Len(t, delays, 2)

	// 1000ms and 2000ms base delays, each with jitter in [0, 500ms).
	assert.GreaterOrEqual(t, delays[0], 1000*time.Millisecond)
	assert.Less(t, delays[0], 1500*time.Millisecond)
	assert.GreaterOrEqual(t, delays[1], 2000*time.Millisecond)
	assert.Less(t, delays[1], 2500*time.Millisecond)
}

func TestDoSucceedsAfterTransientFailure(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"id":"p1","name":"Site redesign"}`))
	}))
	defer ts.Close()

	var delays []time.Duration
	gw := NewGateway(ts.URL)
	gw.sleep = recordingSleep(&delays)

	var out Project
	err := gw.Get(context.Background(), "/projects/p1", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Site redesign", out.Name)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestDoNeverRetries401(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	gw := NewGateway(ts.URL)
	gw.sleep = recordingSleep(&[]time.Duration{})

	err := gw.Get(context.Background(), "/projects", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestUnauthenticatedHandlerFiresOncePerCredential(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	gw := NewGateway(ts.URL)
	gw.SetCredential(futureCredential())

	var fired int32
	gw.OnUnauthenticated(func() { atomic.AddInt32(&fired, 1) })

	// Two concurrent calls both see 401; only the first to classify fires.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = gw.Get(context.Background(), "/tasks", nil, nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))

	// A new credential re-arms the notification.
	gw.SetCredential(futureCredential())
	_ = gw.Get(context.Background(), "/tasks", nil, nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))

	// Further rejections under the same credential stay silent.
	_ = gw.Get(context.Background(), "/tasks", nil, nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))
}

func TestRetryAfterHintOverridesBackoff(t *testing.T) {
	var attempts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	var delays []time.Duration
	gw := NewGateway(ts.URL)
	gw.sleep = recordingSleep(&delays)

	var out []Task
	err := gw.Get(context.Background(), "/tasks", nil, &out)
	require.NoError(t, err)
	require.Len(t, delays, 1)
	assert.Equal(t, 2*time.Second, delays[0], "Retry-After is honored literally, without jitter")
}

func TestDoAttachesBearerAndStableRequestID(t *testing.T) {
	var attempts int32
	headers := make([]http.Header, 0, 3)
	var mu sync.Mutex
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers = append(headers, r.Header.Clone())
		mu.Unlock()
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	gw := NewGateway(ts.URL)
	gw.sleep = recordingSleep(&[]time.Duration{})
	gw.SetCredential(&Credentials{Token: "abc123", ExpiresAt: time.Now().Add(time.Hour)})

	var out []Project
	require.NoError(t, gw.Get(context.Background(), "/projects", nil, &out))

	require.Len(t, headers, 3)
	requestID := headers[0].Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	for _, h := range headers {
		assert.Equal(t, "Bearer abc123", h.Get("Authorization"))
		assert.Equal(t, "application/json", h.Get("Content-Type"))
		assert.Equal(t, requestID, h.Get("X-Request-ID"), "request ID is stable across retries")
	}
}

func TestDoStopsSendingClearedCredentialOnRetry(t *testing.T) {
	var attempts int32
	var secondAuth string
	gw := NewGateway("")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			// Simulate a logout landing between attempts.
			gw.SetCredential(nil)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		secondAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	gw.baseURL = ts.URL
	gw.sleep = recordingSleep(&[]time.Duration{})
	gw.SetCredential(futureCredential())

	var out []Task
	require.NoError(t, gw.Get(context.Background(), "/tasks", nil, &out))
	assert.Empty(t, secondAuth, "retry attempts read the credential at dispatch time")
}

func TestDoClassifiesServerRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":422,"message":"name is required"}`))
	}))
	defer ts.Close()

	gw := NewGateway(ts.URL)
	err := gw.Post(context.Background(), "/projects", map[string]string{}, nil)
	require.Error(t, err)

	var classified *Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, KindServerRejected, classified.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, classified.Status)
	assert.Equal(t, "name is required", classified.Message)
}

func TestDoClassifiesNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	gw := NewGateway(ts.URL)
	err := gw.Get(context.Background(), "/projects", nil, nil)
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))

	var classified *Error
	require.ErrorAs(t, err, &classified)
	assert.Zero(t, classified.Status, "network errors carry no status")
}

func TestDoClassifiesUndecodableSuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	gw := NewGateway(ts.URL)
	var out []Project
	err := gw.Get(context.Background(), "/projects", nil, &out)
	require.Error(t, err)

	var classified *Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, KindServerRejected, classified.Kind)
	assert.Equal(t, http.StatusOK, classified.Status)
}

func TestRetryDelayIgnoresMalformedRetryAfter(t *testing.T) {
	d := retryDelay(http.StatusTooManyRequests, "soon", 0)
	assert.GreaterOrEqual(t, d, 1000*time.Millisecond)
	assert.Less(t, d, 1500*time.Millisecond)
}
