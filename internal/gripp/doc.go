// Package gripp implements the outbound side of the mirror: a client that
// performs single calls against the remote JSON-RPC-over-POST API and a
// process-wide request queue that throttles all callers.
//
// The split of responsibilities is deliberate. Client owns one call: it
// builds the wire envelope, attaches the bearer credential, classifies the
// response, and retries transport and server-side failures with exponential
// backoff. Queue owns the global rate-limit policy: it serializes all
// submissions, enforces a concurrency ceiling and a minimum dispatch
// interval, and — when the remote signals a rate limit — re-queues the
// throttled call at the front and honors the Retry-After hint before the
// next dispatch.
//
// Callers never talk to Client directly; they submit through Queue.Do and
// suspend until their call settles.
package gripp
