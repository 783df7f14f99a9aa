// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/models"
)

// spyRunner records every run start and whether it was full.
type spyRunner struct {
	calls atomic.Int64

	mu    sync.Mutex
	fulls []bool

	err error
}

func (s *spyRunner) Run(_ context.Context, opts service.RunOptions) (*models.RunReport, error) {
	s.calls.Add(1)

	s.mu.Lock()
	s.fulls = append(s.fulls, opts.Full)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return &models.RunReport{RunID: "test"}, nil
}

func TestSyncWorker_RunsOnTicker(t *testing.T) {
	spy := &spyRunner{}
	w := NewSyncWorker(context.Background(), spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	w.Run()
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several scheduled runs, got: %d", got)
}

func TestSyncWorker_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRunner{}
	w := NewSyncWorker(context.Background(), spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	w.Run()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new runs after Stop")
}

func TestSyncWorker_Stop_BeforeRun_NoPanic(t *testing.T) {
	w := NewSyncWorker(context.Background(), &spyRunner{}, config.Sync{}, logger.Nop())

	assert.NotPanics(t, func() { w.Stop() })
}

func TestSyncWorker_DoubleStop_NoPanic(t *testing.T) {
	w := NewSyncWorker(context.Background(), &spyRunner{}, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	w.Run()
	w.Stop()

	assert.NotPanics(t, func() { w.Stop() })
}

func TestSyncWorker_FullEveryNthCycle(t *testing.T) {
	spy := &spyRunner{}
	w := NewSyncWorker(context.Background(), spy, config.Sync{
		Interval:  10 * time.Millisecond,
		FullEvery: 2,
	}, logger.Nop())

	w.Run()
	time.Sleep(65 * time.Millisecond)
	w.Stop()

	spy.mu.Lock()
	fulls := append([]bool(nil), spy.fulls...)
	spy.mu.Unlock()

	require.GreaterOrEqual(t, len(fulls), 4)
	assert.False(t, fulls[0]) // cycle 1: incremental
	assert.True(t, fulls[1])  // cycle 2: full
	assert.False(t, fulls[2])
	assert.True(t, fulls[3])
}

func TestSyncWorker_RunInProgressSkipsCycle(t *testing.T) {
	spy := &spyRunner{err: service.ErrRunInProgress}
	w := NewSyncWorker(context.Background(), spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	// a busy orchestrator must not stop the scheduler
	w.Run()
	time.Sleep(35 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestSyncWorker_ParentContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	spy := &spyRunner{}
	w := NewSyncWorker(ctx, spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	w.Run()
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(25 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(25 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	w.Stop()
}

func TestWorkers_RunAndStopFanOut(t *testing.T) {
	spy := &spyRunner{}
	w1 := NewSyncWorker(context.Background(), spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())
	w2 := NewSyncWorker(context.Background(), spy, config.Sync{Interval: 10 * time.Millisecond}, logger.Nop())

	ws := NewWorkers(w1, w2)
	ws.Run()
	time.Sleep(30 * time.Millisecond)
	ws.Stop()

	callsAfterStop := spy.calls.Load()
	assert.Greater(t, callsAfterStop, int64(0))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load())
}
