package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/service"
)

const defaultSyncInterval = 15 * time.Minute

// syncWorker starts an incremental sync run on a fixed ticker. When
// FullEvery is set, every Nth cycle runs a full sync instead, so drift from
// skipped pages and remote deletions is bounded without refetching
// everything each time.
type syncWorker struct {
	ctx    context.Context
	runner Runner
	cfg    config.Sync
	log    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a syncWorker driven by cfg. The worker is idle until
// Run is called; it stops when ctx is cancelled or Stop is called.
func NewSyncWorker(ctx context.Context, runner Runner, cfg config.Sync, log *logger.Logger) Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultSyncInterval
	}

	return &syncWorker{
		ctx:    ctx,
		runner: runner,
		cfg:    cfg,
		log:    log,
	}
}

// Run implements Worker. It stops any previously running cycle goroutine,
// then launches a new one that triggers a run every interval.
func (w *syncWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.log.Info().
		Str("func", "*syncWorker.Run").
		Dur("interval", w.cfg.Interval).
		Int("full_every", w.cfg.FullEvery).
		Msg("sync scheduler started")

	go func() {
		defer w.wg.Done()

		t := time.NewTicker(w.cfg.Interval)
		defer t.Stop()

		cycle := 0
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				cycle++
				w.runCycle(jobCtx, cycle)
			}
		}
	}()
}

// Stop implements Worker. It cancels the cycle goroutine and blocks until it
// has exited; the run in flight is abandoned mid-entity, not awaited. Safe
// to call when the worker is not running.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *syncWorker) runCycle(ctx context.Context, cycle int) {
	full := w.cfg.FullEvery > 0 && cycle%w.cfg.FullEvery == 0

	report, err := w.runner.Run(w.log.WithContext(ctx), service.RunOptions{Full: full})
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			w.log.Debug().
				Str("func", "*syncWorker.runCycle").
				Int("cycle", cycle).
				Msg("previous run still active, skipping cycle")
			return
		}
		w.log.Err(err).
			Str("func", "*syncWorker.runCycle").
			Int("cycle", cycle).
			Msg("scheduled run failed to start")
		return
	}

	if report.Failed() {
		w.log.Warn().
			Str("func", "*syncWorker.runCycle").
			Str("run_id", report.RunID).
			Int("cycle", cycle).
			Bool("full", full).
			Msg("scheduled run finished with entity failures")
	}
}
