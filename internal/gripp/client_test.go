package gripp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.Gripp{
		BaseURL:           srv.URL,
		Token:             "test-token",
		Timeout:           2 * time.Second,
		MaxRetries:        2,
		RetryBase:         5 * time.Millisecond,
		DefaultRetryAfter: 50 * time.Millisecond,
	}, logger.Nop())

	return client, srv
}

func TestExecute_Success(t *testing.T) {
	var gotAuth string
	var gotBody []byte

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":1,"result":{"rows":[{"id":10},{"id":11}],"paging":{"firstresult":0,"maxresults":100,"count":2},"more_items_in_collection":false}}`))
	})

	result, err := client.Execute(context.Background(), "project.get", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Len(t, result.Rows, 2)
	require.NotNil(t, result.Paging)
	assert.Equal(t, 2, result.Paging.Count)
	require.NotNil(t, result.MoreItems)
	assert.False(t, *result.MoreItems)

	// wire request is an array with one call descriptor
	var batch []map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &batch))
	require.Len(t, batch, 1)
	assert.Equal(t, "project.get", batch[0]["method"])
	params, ok := batch[0]["params"].([]any)
	require.True(t, ok)
	assert.Len(t, params, 2)
}

func TestExecute_BatchedResponseEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"result":{"rows":[{"id":7}]}}]`))
	})

	result, err := client.Execute(context.Background(), "employee.get", nil, nil)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
}

func TestExecute_BareArrayResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"result":[{"id":1},{"id":2},{"id":3}]}`))
	})

	result, err := client.Execute(context.Background(), "hour.get", nil, nil)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 3)
	assert.Nil(t, result.Paging)
}

func TestExecute_ApplicationErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id":1,"error":"unknown method","error_code":404}`))
	})

	_, err := client.Execute(context.Background(), "bogus.get", nil, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, KindApplication, remote.Kind)
	assert.Contains(t, remote.Details, "unknown method")
	assert.Equal(t, int32(1), calls.Load(), "application errors must surface immediately")
}

func TestExecute_ServerErrorRetriedWithBackoff(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"result":{"rows":[]}}`))
	})

	result, err := client.Execute(context.Background(), "project.get", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, int32(3), calls.Load())
}

func TestExecute_ServerErrorExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "still broken", http.StatusBadGateway)
	})

	_, err := client.Execute(context.Background(), "project.get", nil, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, KindServer, remote.Kind)
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus MaxRetries")
}

func TestExecute_RateLimitReturnedToCaller(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Execute(context.Background(), "invoice.get", nil, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, KindRateLimit, remote.Kind)
	assert.Equal(t, 2*time.Second, remote.RetryAfter)
	assert.Equal(t, int32(1), calls.Load(), "rate limits are handled by the queue, not retried in place")
	assert.True(t, IsRateLimit(err))
}

func TestExecute_RateLimitWithoutHeaderUsesDefault(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Execute(context.Background(), "invoice.get", nil, nil)
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, 50*time.Millisecond, remote.RetryAfter)
}

func TestExecute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewClient(config.Gripp{
		BaseURL:    srv.URL,
		Token:      "t",
		Timeout:    time.Second,
		MaxRetries: 1,
		RetryBase:  time.Millisecond,
	}, logger.Nop())

	_, err := client.Execute(context.Background(), "project.get", nil, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, KindTransport, remote.Kind)
}

func TestExecute_ContextCancelledDuringBackoff(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Execute(ctx, "project.get", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseRetryAfter(t *testing.T) {
	fallback := 5 * time.Second

	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "seconds", header: "3", want: 3 * time.Second},
		{name: "absent", header: "", want: fallback},
		{name: "garbage", header: "soon", want: fallback},
		{name: "negative", header: "-1", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRetryAfter(tt.header, fallback))
		})
	}
}
