package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. Rows are matched on the remote identifier, so the
// same statement serves first insert and every later refresh.
type projectRepository struct {
	uow    *UnitOfWork
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] bound to uow.
func NewProjectRepository(uow *UnitOfWork, logger *logger.Logger) ProjectRepository {
	return &projectRepository{
		uow:    uow,
		logger: logger,
	}
}

// Upsert inserts the project or overwrites the existing mirror row with the
// same remote identifier.
func (p *projectRepository) Upsert(ctx context.Context, project *models.Project) error {
	log := logger.FromContext(ctx)

	if project == nil || project.GrippID == 0 {
		return fmt.Errorf("%w: project without remote id", ErrInvalidRow)
	}

	query, args, err := buildProjectUpsert(project)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.Upsert").
			Int64("gripp_id", project.GrippID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	result, execErr := p.uow.querier().ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "projectRepository.Upsert").
			Int64("gripp_id", project.GrippID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert project")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrRowNotSaved
	}

	return nil
}

// GetByGrippID returns one mirrored project by its remote identifier.
func (p *projectRepository) GetByGrippID(ctx context.Context, grippID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProjectSelectByGrippID(grippID)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.GetByGrippID").
			Int64("gripp_id", grippID).
			Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var (
		project   models.Project
		startDate sql.NullTime
		deadline  sql.NullTime
		updatedOn sql.NullTime
	)

	scanErr := p.uow.querier().QueryRowContext(ctx, query, args...).Scan(
		&project.ID,
		&project.GrippID,
		&project.Name,
		&project.Number,
		&project.Phase,
		&project.Company,
		&project.Archived,
		&startDate,
		&deadline,
		&updatedOn,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Project{}, scanErr
		}
		log.Err(scanErr).
			Str("func", "projectRepository.GetByGrippID").
			Int64("gripp_id", grippID).
			Msg("failed to scan project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	project.StartDate = models.RemoteTime{Time: startDate.Time}
	project.Deadline = models.RemoteTime{Time: deadline.Time}
	project.UpdatedOn = models.RemoteTime{Time: updatedOn.Time}

	return project, nil
}
