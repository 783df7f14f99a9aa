package gripp

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies a failed remote call. The kind decides the retry
// policy: transport and server failures are retried with backoff, rate
// limits are retried after the mandated delay, application errors surface
// to the caller immediately.
type ErrorKind int

const (
	// KindTransport is a connection-level failure: no response was
	// received at all (includes call timeouts).
	KindTransport ErrorKind = iota

	// KindRateLimit is an HTTP 429/503 throttling response, optionally
	// carrying a Retry-After hint.
	KindRateLimit

	// KindServer is any other 5xx-class response.
	KindServer

	// KindApplication is a well-formed error payload or a non-retryable
	// HTTP status; retrying will not help.
	KindApplication
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// RemoteError is the structured failure of one remote call.
type RemoteError struct {
	Kind    ErrorKind
	Message string
	Details string

	// StatusCode is the HTTP status of the response, zero for
	// connection-level failures.
	StatusCode int

	// RetryAfter is the minimum wait before retrying a rate-limited call.
	// Only set for KindRateLimit; defaulted when the response carries no
	// Retry-After header.
	RetryAfter time.Duration
}

func (e *RemoteError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("remote %s error: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("remote %s error: %s", e.Kind, e.Message)
}

// Retryable reports whether the failure may succeed on a plain retry with
// backoff. Rate limits are retryable too, but only after the mandated wait,
// which the queue handles separately.
func (e *RemoteError) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindServer
}

// IsRateLimit reports whether err is a remote rate-limit signal.
func IsRateLimit(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Kind == KindRateLimit
}

var (
	// ErrQueueClosed is returned for calls submitted to, or still pending
	// in, a queue that has been closed.
	ErrQueueClosed = errors.New("request queue is closed")
)
