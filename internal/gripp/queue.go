package gripp

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/metrics"
	"github.com/mwiersma/grippsync/models"
)

// Caller executes a single remote call. Implemented by *Client; stubbed in
// tests.
type Caller interface {
	Execute(ctx context.Context, method string, filters []models.Filter, options *models.Options) (*models.CallResult, error)
}

type callOutcome struct {
	result *models.CallResult
	err    error
}

// queuedCall is one unit of outbound work: the operation descriptor plus the
// channel its outcome settles on. A call is destroyed when settled, or moved
// back to the front of the queue after a rate-limit signal.
type queuedCall struct {
	ctx     context.Context
	method  string
	filters []models.Filter
	options *models.Options

	// attempts counts rate-limit requeues; the budget is the configured
	// MaxAttempts.
	attempts int

	done chan callOutcome
}

// Queue serializes all outbound calls of the process behind one worker. The
// worker enforces the concurrency ceiling and the minimum dispatch interval,
// drains pending calls FIFO, and re-queues rate-limited calls at the front.
// The worker exits when the queue drains and is restarted by the next
// submission.
type Queue struct {
	caller  Caller
	cfg     config.Queue
	log     *logger.Logger
	limiter *rate.Limiter

	// poll bounds the sleep used while waiting for a free slot.
	poll time.Duration

	mu          sync.Mutex
	pending     []*queuedCall
	running     bool
	active      int
	pausedUntil time.Time
	closed      bool
}

// NewQueue constructs a Queue draining into caller. Zero config fields fall
// back to defaults matching the remote's published limits.
func NewQueue(caller Caller, cfg config.Queue, log *logger.Logger) *Queue {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 2
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}

	log.Debug().
		Int("max_concurrent", cfg.MaxConcurrent).
		Dur("min_interval", cfg.MinInterval).
		Msg("creating request queue")

	return &Queue{
		caller:  caller,
		cfg:     cfg,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		poll:    25 * time.Millisecond,
	}
}

// Do submits one call and blocks until it settles. Cancelling ctx unblocks
// the caller but does not abort an already dispatched call; it still runs to
// completion in the background.
func (q *Queue) Do(ctx context.Context, method string, filters []models.Filter, options *models.Options) (*models.CallResult, error) {
	call := &queuedCall{
		ctx:     ctx,
		method:  method,
		filters: filters,
		options: options,
		done:    make(chan callOutcome, 1),
	}

	if err := q.enqueue(call, false); err != nil {
		return nil, err
	}

	select {
	case outcome := <-call.done:
		return outcome.result, outcome.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len returns the number of calls waiting for dispatch.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close rejects all pending and future submissions with ErrQueueClosed.
// In-flight calls still settle normally.
func (q *Queue) Close() {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.closed = true
	q.mu.Unlock()

	for _, call := range pending {
		call.done <- callOutcome{err: ErrQueueClosed}
	}
	metrics.QueueDepth.Set(0)
}

func (q *Queue) enqueue(call *queuedCall, front bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	if front {
		q.pending = append([]*queuedCall{call}, q.pending...)
	} else {
		q.pending = append(q.pending, call)
	}
	metrics.QueueDepth.Set(float64(len(q.pending)))

	if !q.running {
		q.running = true
		go q.work()
	}
	return nil
}

// work is the single drain loop. It never pops a call before the call can
// actually dispatch, so a front-requeued call overtakes everything still
// pending.
func (q *Queue) work() {
	for {
		if !q.hasPending() {
			return // idle; restarted by the next enqueue
		}

		q.waitTurn()

		call := q.pop()
		if call == nil {
			continue
		}

		go q.dispatch(call)
	}
}

// hasPending reports whether the worker should keep running; it flips
// running off under the same lock enqueue checks, so exactly one worker
// exists at any time.
func (q *Queue) hasPending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || len(q.pending) == 0 {
		q.running = false
		return false
	}
	return true
}

// waitTurn blocks until a dispatch is allowed: any rate-limit pause has
// elapsed, a concurrency slot is free, and the minimum interval since the
// previous dispatch has passed.
func (q *Queue) waitTurn() {
	for {
		q.mu.Lock()
		pause := time.Until(q.pausedUntil)
		free := q.active < q.cfg.MaxConcurrent
		q.mu.Unlock()

		switch {
		case pause > 0:
			time.Sleep(pause)
		case !free:
			time.Sleep(q.poll)
		default:
			// the limiter enforces the minimum dispatch spacing; the
			// background context keeps queued work running even when the
			// submitting caller has given up
			_ = q.limiter.Wait(context.Background())
			return
		}
	}
}

func (q *Queue) pop() *queuedCall {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	call := q.pending[0]
	q.pending = q.pending[1:]
	q.active++
	metrics.QueueDepth.Set(float64(len(q.pending)))
	return call
}

// dispatch executes one popped call and settles or re-queues it.
func (q *Queue) dispatch(call *queuedCall) {
	result, err := q.caller.Execute(call.ctx, call.method, call.filters, call.options)

	var remote *RemoteError
	if errors.As(err, &remote) && remote.Kind == KindRateLimit {
		call.attempts++
		if call.attempts < q.cfg.MaxAttempts && q.requeueFront(call, remote.RetryAfter) {
			q.log.Warn().
				Str("func", "*Queue.dispatch").
				Str("method", call.method).
				Int("attempts", call.attempts).
				Dur("retry_after", remote.RetryAfter).
				Msg("rate limited, requeued at front")
			return
		}
	}

	q.mu.Lock()
	q.active--
	q.mu.Unlock()

	call.done <- callOutcome{result: result, err: err}
}

// requeueFront puts a rate-limited call back at the head of the queue and
// pauses the worker for max(minInterval, hint). Returns false if the queue
// has been closed meanwhile; the call then settles with its original error.
func (q *Queue) requeueFront(call *queuedCall, hint time.Duration) bool {
	wait := hint
	if wait < q.cfg.MinInterval {
		wait = q.cfg.MinInterval
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.pausedUntil = time.Now().Add(wait)
	q.pending = append([]*queuedCall{call}, q.pending...)
	q.active--
	metrics.QueueDepth.Set(float64(len(q.pending)))

	if !q.running {
		q.running = true
		go q.work()
	}
	return true
}
