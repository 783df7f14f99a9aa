package store

import (
	"context"
	"fmt"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// absenceRequestRepository is the PostgreSQL-backed implementation of
// [AbsenceRequestRepository]. It mirrors the invoice repository: parents are
// upserted on their remote identifier and per-day lines are replaced
// wholesale.
type absenceRequestRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewAbsenceRequestRepository constructs an [AbsenceRequestRepository]
// bound to uow.
func NewAbsenceRequestRepository(uow *UnitOfWork, logger *logger.Logger) AbsenceRequestRepository {
	return &absenceRequestRepository{
		uow:    uow,
		logger: logger,
	}
}

// Upsert inserts the absence request or overwrites the existing mirror row
// with the same remote identifier.
func (a *absenceRequestRepository) Upsert(ctx context.Context, request *models.AbsenceRequest) error {
	log := logger.FromContext(ctx)

	if request == nil || request.GrippID == 0 {
		return fmt.Errorf("%w: absence request without remote id", ErrInvalidRow)
	}

	query, args, err := buildAbsenceRequestUpsert(request)
	if err != nil {
		log.Err(err).
			Str("func", "absenceRequestRepository.Upsert").
			Int64("gripp_id", request.GrippID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, execErr := a.uow.querier().ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "absenceRequestRepository.Upsert").
			Int64("gripp_id", request.GrippID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert absence request")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRowNotSaved
	}

	return nil
}

// ReplaceLines deletes every line of the absence request and inserts the
// given set using one prepared statement.
func (a *absenceRequestRepository) ReplaceLines(ctx context.Context, requestGrippID int64, lines []models.AbsenceRequestLine) error {
	log := logger.FromContext(ctx)

	if requestGrippID == 0 {
		return fmt.Errorf("%w: absence request lines without parent remote id", ErrInvalidRow)
	}

	// validate the whole set before touching the table; an invalid line
	// must not leave the request with its lines half replaced
	for idx, line := range lines {
		if line.GrippID == 0 {
			return fmt.Errorf("%w: absence request line at index %d without remote id", ErrInvalidRow, idx)
		}
	}

	deleteQuery, deleteArgs, err := buildAbsenceRequestLinesDelete(requestGrippID)
	if err != nil {
		log.Err(err).
			Str("func", "absenceRequestRepository.ReplaceLines").
			Int64("request_gripp_id", requestGrippID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = a.uow.querier().ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "absenceRequestRepository.ReplaceLines").
			Int64("request_gripp_id", requestGrippID).
			Msg("failed to delete previous absence request lines")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(lines) == 0 {
		return nil
	}

	insertQuery, _, err := buildAbsenceRequestLineInsert(requestGrippID, &lines[0])
	if err != nil {
		log.Err(err).
			Str("func", "absenceRequestRepository.ReplaceLines").
			Int64("request_gripp_id", requestGrippID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	stmt, err := a.uow.querier().PrepareContext(ctx, insertQuery)
	if err != nil {
		log.Err(err).
			Str("func", "absenceRequestRepository.ReplaceLines").
			Int64("request_gripp_id", requestGrippID).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, line := range lines {
		_, execErr := stmt.ExecContext(ctx,
			line.GrippID,
			requestGrippID,
			nullTime(line.Date),
			line.Amount,
			line.StartingTime,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "absenceRequestRepository.ReplaceLines").
				Int("iteration", idx+1).
				Int("total", len(lines)).
				Int64("request_gripp_id", requestGrippID).
				Int64("line_gripp_id", line.GrippID).
				Msg("failed to insert absence request line")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	log.Debug().
		Str("func", "absenceRequestRepository.ReplaceLines").
		Int64("request_gripp_id", requestGrippID).
		Int("lines_count", len(lines)).
		Msg("replaced absence request lines")

	return nil
}
