package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// syncStatusRepository is the PostgreSQL-backed implementation of
// [SyncStatusRepository]. All statements run on the bare connection of the
// bound [*UnitOfWork], never on an open transaction: bookkeeping must
// survive a rolled-back entity sync, and concurrent status reads must
// observe only committed state.
type syncStatusRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewSyncStatusRepository constructs a [SyncStatusRepository] bound to uow.
func NewSyncStatusRepository(uow *UnitOfWork, logger *logger.Logger) SyncStatusRepository {
	return &syncStatusRepository{
		uow:    uow,
		logger: logger,
	}
}

// Ensure creates a pending bookkeeping row for every listed entity that does
// not have one yet. Existing rows keep their sync history untouched.
func (s *syncStatusRepository) Ensure(ctx context.Context, entities []string) error {
	log := logger.FromContext(ctx)

	for _, entity := range entities {
		query, args, err := buildSyncStatusEnsure(entity)
		if err != nil {
			log.Err(err).
				Str("func", "syncStatusRepository.Ensure").
				Str("entity", entity).
				Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
		}

		if _, err = s.uow.connection().ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "syncStatusRepository.Ensure").
				Str("entity", entity).
				Msg("failed to ensure sync status row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Debug().
		Str("func", "syncStatusRepository.Ensure").
		Int("entities_count", len(entities)).
		Msg("sync status rows ensured")

	return nil
}

// Get returns the bookkeeping row for one entity.
func (s *syncStatusRepository) Get(ctx context.Context, entity string) (models.SyncStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSyncStatusSelect(entity)
	if err != nil {
		log.Err(err).
			Str("func", "syncStatusRepository.Get").
			Str("entity", entity).
			Msg("failed to build query")
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	row := s.uow.connection().QueryRowContext(ctx, query, args...)

	status, scanErr := scanSyncStatus(row.Scan)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "syncStatusRepository.Get").
				Str("entity", entity).
				Msg("sync status row not found")
			return models.SyncStatus{}, ErrSyncStatusNotFound
		}
		log.Err(scanErr).
			Str("func", "syncStatusRepository.Get").
			Str("entity", entity).
			Msg("failed to scan sync status row")
		return models.SyncStatus{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return status, nil
}

// List returns the bookkeeping rows of every entity, ordered by name.
func (s *syncStatusRepository) List(ctx context.Context) ([]models.SyncStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSyncStatusSelect("")
	if err != nil {
		log.Err(err).
			Str("func", "syncStatusRepository.List").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, queryErr := s.uow.connection().QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "syncStatusRepository.List").
			Msg("failed to execute query for listing sync statuses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	statuses := make([]models.SyncStatus, 0, len(models.SyncEntities))

	for rows.Next() {
		status, scanErr := scanSyncStatus(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncStatusRepository.List").
				Msg("failed to scan sync status row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		statuses = append(statuses, status)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncStatusRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return statuses, nil
}

// MarkInProgress records the start of a run and clears the previous error.
func (s *syncStatusRepository) MarkInProgress(ctx context.Context, entity string) error {
	query, args, err := buildSyncStatusMarkInProgress(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	return s.execStatusUpdate(ctx, "syncStatusRepository.MarkInProgress", entity, query, args)
}

// MarkSuccess records a finished run. The at timestamp is the run's start
// time so the next incremental filter never misses rows changed mid-run.
func (s *syncStatusRepository) MarkSuccess(ctx context.Context, entity, mode string, count int, at time.Time) error {
	query, args, err := buildSyncStatusMarkSuccess(entity, mode, count, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	return s.execStatusUpdate(ctx, "syncStatusRepository.MarkSuccess", entity, query, args)
}

// MarkError records a failed run with its message.
func (s *syncStatusRepository) MarkError(ctx context.Context, entity, message string) error {
	query, args, err := buildSyncStatusMarkError(entity, message)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	return s.execStatusUpdate(ctx, "syncStatusRepository.MarkError", entity, query, args)
}

// execStatusUpdate runs one bookkeeping UPDATE and checks that it actually
// matched a row; a bootstrap that skipped Ensure surfaces here.
func (s *syncStatusRepository) execStatusUpdate(ctx context.Context, funcName, entity, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := s.uow.connection().ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("entity", entity).
			Msg("failed to execute sync status update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("entity", entity).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", funcName).
			Str("entity", entity).
			Msg("sync status row not found")
		return ErrSyncStatusNotFound
	}

	return nil
}

// scanSyncStatus maps one sync_status row in [syncStatusColumns] order.
func scanSyncStatus(scan func(dest ...any) error) (models.SyncStatus, error) {
	var (
		status          models.SyncStatus
		intervalSeconds int64
	)

	err := scan(
		&status.ID,
		&status.Entity,
		&status.LastSyncAt,
		&status.LastIncrementalSyncAt,
		&status.LastFullSyncAt,
		&intervalSeconds,
		&status.LastSyncCount,
		&status.LastSyncStatus,
		&status.LastSyncError,
	)
	if err != nil {
		return models.SyncStatus{}, err
	}

	status.SyncInterval = time.Duration(intervalSeconds) * time.Second
	return status, nil
}
