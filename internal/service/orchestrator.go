// SPDX-License-Identifier: Apache-2.0

// Package service implements the sync orchestrator: the per-entity routines
// that pull changed rows from the remote API through the request queue and
// upsert them into the local mirror.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/gripp"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/metrics"
	"github.com/mwiersma/grippsync/internal/store"
	"github.com/mwiersma/grippsync/models"
)

// Scheduling and pagination defaults, applied when the config leaves the
// corresponding field zero.
const (
	defaultPageSize    = 250
	defaultMaxPages    = 1000
	defaultPageRetries = 3
	defaultRetryBase   = 2 * time.Second
)

// entityMethods maps every mirrored entity to the remote method that lists
// its rows. The map doubles as the entity-name whitelist for manual runs.
var entityMethods = map[string]string{
	models.EntityProjects:        "project.get",
	models.EntityEmployees:       "employee.get",
	models.EntityHours:           "hour.get",
	models.EntityInvoices:        "invoice.get",
	models.EntityAbsenceRequests: "absencerequest.get",
}

// RunOptions selects what a run covers. An empty Entities slice means every
// mirrored entity in the fixed dependency order; Full forces a full refetch
// instead of the incremental "changed since last run" filter.
type RunOptions struct {
	Entities []string
	Full     bool
}

// Orchestrator walks the mirrored entities in dependency order and syncs
// each one: paginated fetch through the request queue, per-row upsert inside
// a per-entity transaction, bookkeeping in the sync_status table. At most
// one run executes at a time.
type Orchestrator struct {
	caller RemoteCaller
	uow    *store.UnitOfWork
	repos  *store.Repositories
	cfg    config.Sync
	log    *logger.Logger

	runMu sync.Mutex
}

// NewOrchestrator constructs an orchestrator over the given queue and
// repository set. Zero config fields fall back to package defaults.
func NewOrchestrator(caller RemoteCaller, uow *store.UnitOfWork, repos *store.Repositories, cfg config.Sync, log *logger.Logger) *Orchestrator {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	if cfg.PageRetries <= 0 {
		cfg.PageRetries = defaultPageRetries
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = defaultRetryBase
	}

	return &Orchestrator{
		caller: caller,
		uow:    uow,
		repos:  repos,
		cfg:    cfg,
		log:    log,
	}
}

// Bootstrap creates the bookkeeping row of every mirrored entity that does
// not have one yet. Safe to call on every start.
func (o *Orchestrator) Bootstrap(ctx context.Context) error {
	return o.repos.SyncStatus.Ensure(ctx, models.SyncEntities)
}

// Run executes one synchronous sync run and returns its report. A second
// Run (or Trigger) while one is active fails fast with ErrRunInProgress.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*models.RunReport, error) {
	entities, err := resolveEntities(opts.Entities)
	if err != nil {
		return nil, err
	}

	if !o.runMu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer o.runMu.Unlock()

	return o.run(ctx, uuid.NewString(), entities, opts.Full), nil
}

// Trigger starts a run in the background and returns its id immediately.
// The run outlives the caller's context; cancelling the trigger request
// does not abandon an accepted run.
func (o *Orchestrator) Trigger(ctx context.Context, opts RunOptions) (string, error) {
	entities, err := resolveEntities(opts.Entities)
	if err != nil {
		return "", err
	}

	if !o.runMu.TryLock() {
		return "", ErrRunInProgress
	}

	runID := uuid.NewString()

	go func() {
		defer o.runMu.Unlock()

		runCtx := o.log.WithContext(context.WithoutCancel(ctx))
		report := o.run(runCtx, runID, entities, opts.Full)
		if report.Failed() {
			o.log.Warn().
				Str("func", "*Orchestrator.Trigger").
				Str("run_id", runID).
				Msg("triggered run finished with entity failures")
		}
	}()

	return runID, nil
}

// Status returns the bookkeeping rows of every mirrored entity.
func (o *Orchestrator) Status(ctx context.Context) ([]models.SyncStatus, error) {
	return o.repos.SyncStatus.List(ctx)
}

func resolveEntities(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return models.SyncEntities, nil
	}

	// preserve the fixed dependency order regardless of request order
	want := make(map[string]bool, len(requested))
	for _, entity := range requested {
		if _, ok := entityMethods[entity]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
		}
		want[entity] = true
	}

	entities := make([]string, 0, len(want))
	for _, entity := range models.SyncEntities {
		if want[entity] {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}

func (o *Orchestrator) run(ctx context.Context, runID string, entities []string, full bool) *models.RunReport {
	log := logger.FromContext(ctx)

	metrics.RunsStarted.Inc()

	report := &models.RunReport{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	log.Info().
		Str("func", "*Orchestrator.run").
		Str("run_id", runID).
		Bool("full", full).
		Int("entities_count", len(entities)).
		Msg("sync run started")

	for _, entity := range entities {
		// an abandoned run stops scheduling further entities
		if ctx.Err() != nil {
			log.Warn().
				Str("func", "*Orchestrator.run").
				Str("run_id", runID).
				Str("entity", entity).
				Msg("run abandoned before entity")
			break
		}

		result := o.syncEntity(ctx, entity, full)
		report.Results = append(report.Results, result)

		if result.Err != nil {
			metrics.EntityFailures.WithLabelValues(entity).Inc()
			log.Err(result.Err).
				Str("func", "*Orchestrator.run").
				Str("run_id", runID).
				Str("entity", entity).
				Msg("entity sync failed, continuing with remaining entities")
		}
	}

	report.FinishedAt = time.Now()

	log.Info().
		Str("func", "*Orchestrator.run").
		Str("run_id", runID).
		Bool("failed", report.Failed()).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync run finished")

	return report
}

// syncEntity runs the sync routine of one entity: status read, mode choice,
// paginated fetch, per-row upsert inside one transaction, and bookkeeping.
// Mirror writes roll back as a whole on unrecoverable errors; bookkeeping
// writes happen outside the transaction so the error state survives the
// rollback.
func (o *Orchestrator) syncEntity(ctx context.Context, entity string, full bool) models.SyncResult {
	log := logger.FromContext(ctx)

	result := models.SyncResult{Entity: entity, Mode: models.SyncModeFull}

	// the run start, not the finish, becomes the next incremental
	// watermark: rows changed mid-run are refetched rather than missed
	runStart := time.Now()

	status, err := o.repos.SyncStatus.Get(ctx, entity)
	if err != nil {
		result.Err = fmt.Errorf("read sync status: %w", err)
		return result
	}

	var filters []models.Filter
	if !full && status.LastSyncAt != nil {
		result.Mode = models.SyncModeIncremental
		filters = append(filters, models.UpdatedSince(*status.LastSyncAt))
	}

	if err = o.repos.SyncStatus.MarkInProgress(ctx, entity); err != nil {
		result.Err = fmt.Errorf("mark in progress: %w", err)
		return result
	}

	log.Info().
		Str("func", "*Orchestrator.syncEntity").
		Str("entity", entity).
		Str("mode", result.Mode).
		Msg("entity sync started")

	txErr := o.uow.WithTransaction(ctx, func(ctx context.Context) error {
		return o.fetchAndApply(ctx, entity, filters, &result)
	})
	if txErr != nil {
		result.Err = txErr

		if markErr := o.repos.SyncStatus.MarkError(ctx, entity, txErr.Error()); markErr != nil {
			log.Err(markErr).
				Str("func", "*Orchestrator.syncEntity").
				Str("entity", entity).
				Msg("failed to record entity error state")
		}
		return result
	}

	if err = o.repos.SyncStatus.MarkSuccess(ctx, entity, result.Mode, result.Rows, runStart); err != nil {
		result.Err = fmt.Errorf("mark success: %w", err)
		return result
	}

	log.Info().
		Str("func", "*Orchestrator.syncEntity").
		Str("entity", entity).
		Str("mode", result.Mode).
		Int("rows", result.Rows).
		Int("pages_fetched", result.PagesFetched).
		Int("pages_failed", result.PagesFailed).
		Msg("entity sync finished")

	return result
}

// fetchAndApply walks the remote collection page by page and upserts every
// decodable row. It runs inside the entity transaction.
func (o *Orchestrator) fetchAndApply(ctx context.Context, entity string, filters []models.Filter, result *models.SyncResult) error {
	log := logger.FromContext(ctx)
	method := entityMethods[entity]

	firstResult := 0

	for page := 0; ; page++ {
		if page >= o.cfg.MaxPages {
			log.Warn().
				Str("func", "*Orchestrator.fetchAndApply").
				Str("entity", entity).
				Int("max_pages", o.cfg.MaxPages).
				Msg("page cap reached, stopping pagination early")
			return nil
		}

		pageResult, err := o.fetchPage(ctx, method, filters, firstResult)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("fetch page at offset %d: %w", firstResult, err)
			}

			var remote *gripp.RemoteError
			if errors.As(err, &remote) && remote.Kind == gripp.KindApplication {
				// the remote rejected the call itself; later pages
				// would fail identically
				return fmt.Errorf("fetch page at offset %d: %w", firstResult, err)
			}

			result.PagesFailed++
			metrics.PagesSkipped.WithLabelValues(entity).Inc()
			log.Warn().
				Str("func", "*Orchestrator.fetchAndApply").
				Str("entity", entity).
				Int("offset", firstResult).
				Err(err).
				Msg("page retries exhausted, skipping page")

			firstResult += o.cfg.PageSize
			continue
		}

		result.PagesFetched++
		metrics.PagesFetched.WithLabelValues(entity).Inc()

		if len(pageResult.Rows) == 0 {
			return nil
		}

		for _, raw := range pageResult.Rows {
			applyErr := o.applyRow(ctx, entity, raw)
			if applyErr == nil {
				result.Rows++
				metrics.RowsUpserted.WithLabelValues(entity).Inc()
				continue
			}

			if errors.Is(applyErr, store.ErrInvalidRow) {
				result.RowsSkipped++
				log.Warn().
					Str("func", "*Orchestrator.fetchAndApply").
					Str("entity", entity).
					Err(applyErr).
					Msg("skipping invalid remote row")
				continue
			}

			return fmt.Errorf("apply %s row: %w", entity, applyErr)
		}

		if len(pageResult.Rows) < o.cfg.PageSize {
			return nil
		}
		if pageResult.MoreItems != nil && !*pageResult.MoreItems {
			return nil
		}

		firstResult += o.cfg.PageSize
	}
}

// fetchPage requests one page through the queue, retrying transient
// failures a small fixed number of times with exponential backoff.
func (o *Orchestrator) fetchPage(ctx context.Context, method string, filters []models.Filter, firstResult int) (*models.CallResult, error) {
	options := &models.Options{
		Paging: &models.Paging{
			FirstResult: firstResult,
			MaxResults:  o.cfg.PageSize,
		},
		Orderings: []models.Ordering{{Field: "id", Direction: "asc"}},
	}

	var lastErr error

	for attempt := 1; attempt <= o.cfg.PageRetries; attempt++ {
		pageResult, err := o.caller.Do(ctx, method, filters, options)
		if err == nil {
			return pageResult, nil
		}
		lastErr = err

		var remote *gripp.RemoteError
		if errors.As(err, &remote) && remote.Kind == gripp.KindApplication {
			return nil, err
		}

		if attempt == o.cfg.PageRetries {
			break
		}

		backoff := o.cfg.RetryBase * (1 << (attempt - 1))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, lastErr
}

// applyRow decodes one raw remote row and upserts it through the entity's
// repository. Child lines are replaced wholesale under their parent.
// Decode failures are reported as invalid rows so the caller can skip them.
func (o *Orchestrator) applyRow(ctx context.Context, entity string, raw json.RawMessage) error {
	switch entity {
	case models.EntityProjects:
		var row models.Project
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: decode project: %w", store.ErrInvalidRow, err)
		}
		return o.repos.Projects.Upsert(ctx, &row)

	case models.EntityEmployees:
		var row models.Employee
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: decode employee: %w", store.ErrInvalidRow, err)
		}
		return o.repos.Employees.Upsert(ctx, &row)

	case models.EntityHours:
		var row models.Hour
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: decode hour: %w", store.ErrInvalidRow, err)
		}
		return o.repos.Hours.Upsert(ctx, &row)

	case models.EntityInvoices:
		var row models.Invoice
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: decode invoice: %w", store.ErrInvalidRow, err)
		}
		if err := o.repos.Invoices.Upsert(ctx, &row); err != nil {
			return err
		}
		return o.repos.Invoices.ReplaceLines(ctx, row.GrippID, row.Lines)

	case models.EntityAbsenceRequests:
		var row models.AbsenceRequest
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("%w: decode absence request: %w", store.ErrInvalidRow, err)
		}
		if err := o.repos.Absences.Upsert(ctx, &row); err != nil {
			return err
		}
		return o.repos.Absences.ReplaceLines(ctx, row.GrippID, row.Lines)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
}
