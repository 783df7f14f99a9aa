package store

import (
	"context"
	"fmt"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository].
type employeeRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] bound to uow.
func NewEmployeeRepository(uow *UnitOfWork, logger *logger.Logger) EmployeeRepository {
	return &employeeRepository{
		uow:    uow,
		logger: logger,
	}
}

// Upsert inserts the employee or overwrites the existing mirror row with the
// same remote identifier.
func (e *employeeRepository) Upsert(ctx context.Context, employee *models.Employee) error {
	log := logger.FromContext(ctx)

	if employee == nil || employee.GrippID == 0 {
		return fmt.Errorf("%w: employee without remote id", ErrInvalidRow)
	}

	query, args, err := buildEmployeeUpsert(employee)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.Upsert").
			Int64("gripp_id", employee.GrippID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, execErr := e.uow.querier().ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "employeeRepository.Upsert").
			Int64("gripp_id", employee.GrippID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert employee")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRowNotSaved
	}

	return nil
}
