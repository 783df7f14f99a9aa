package store

import (
	"context"
	"fmt"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// hourRepository is the PostgreSQL-backed implementation of
// [HourRepository]. Hour rows reference projects and employees by their
// remote identifiers, which is why those entities are mirrored first.
type hourRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewHourRepository constructs an [HourRepository] bound to uow.
func NewHourRepository(uow *UnitOfWork, logger *logger.Logger) HourRepository {
	return &hourRepository{
		uow:    uow,
		logger: logger,
	}
}

// Upsert inserts the hour booking or overwrites the existing mirror row with
// the same remote identifier.
func (h *hourRepository) Upsert(ctx context.Context, hour *models.Hour) error {
	log := logger.FromContext(ctx)

	if hour == nil || hour.GrippID == 0 {
		return fmt.Errorf("%w: hour without remote id", ErrInvalidRow)
	}

	query, args, err := buildHourUpsert(hour)
	if err != nil {
		log.Err(err).
			Str("func", "hourRepository.Upsert").
			Int64("gripp_id", hour.GrippID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, execErr := h.uow.querier().ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "hourRepository.Upsert").
			Int64("gripp_id", hour.GrippID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert hour booking")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRowNotSaved
	}

	return nil
}
