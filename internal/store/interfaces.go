package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/mwiersma/grippsync/models"
)

// SyncStatusRepository is the persisted per-entity bookkeeping store. One
// row exists per entity name; rows are created at bootstrap and only ever
// mutated afterwards.
type SyncStatusRepository interface {
	// Ensure creates a pending bookkeeping row for every entity that does
	// not have one yet. Existing rows are left untouched.
	Ensure(ctx context.Context, entities []string) error

	// Get returns the bookkeeping row for one entity, or
	// ErrSyncStatusNotFound.
	Get(ctx context.Context, entity string) (models.SyncStatus, error)

	// List returns the bookkeeping rows of all entities.
	List(ctx context.Context) ([]models.SyncStatus, error)

	// MarkInProgress records the start of a run for the entity.
	MarkInProgress(ctx context.Context, entity string) error

	// MarkSuccess records a finished run: row count, mode-specific sync
	// time, and status success. The at timestamp is the run's start time
	// so the next incremental filter never misses rows changed mid-run.
	MarkSuccess(ctx context.Context, entity, mode string, count int, at time.Time) error

	// MarkError records a failed run with its message.
	MarkError(ctx context.Context, entity, message string) error
}

// ProjectRepository mirrors remote projects.
type ProjectRepository interface {
	Upsert(ctx context.Context, project *models.Project) error
	GetByGrippID(ctx context.Context, grippID int64) (models.Project, error)
}

// EmployeeRepository mirrors remote employees.
type EmployeeRepository interface {
	Upsert(ctx context.Context, employee *models.Employee) error
}

// HourRepository mirrors remote hour bookings.
type HourRepository interface {
	Upsert(ctx context.Context, hour *models.Hour) error
}

// InvoiceRepository mirrors remote invoices and their lines. Lines are
// replaced wholesale on every sync of the parent invoice.
type InvoiceRepository interface {
	Upsert(ctx context.Context, invoice *models.Invoice) error
	ReplaceLines(ctx context.Context, invoiceGrippID int64, lines []models.InvoiceLine) error
}

// AbsenceRequestRepository mirrors remote absence requests and their lines.
type AbsenceRequestRepository interface {
	Upsert(ctx context.Context, request *models.AbsenceRequest) error
	ReplaceLines(ctx context.Context, requestGrippID int64, lines []models.AbsenceRequestLine) error
}
