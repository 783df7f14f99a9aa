package store

import (
	"github.com/mwiersma/grippsync/internal/logger"
)

// Repositories bundles every mirror repository bound to one UnitOfWork.
// All repositories route their statements through the unit of work, so
// writes issued inside WithTransaction share the same transaction.
type Repositories struct {
	SyncStatus SyncStatusRepository
	Projects   ProjectRepository
	Employees  EmployeeRepository
	Hours      HourRepository
	Invoices   InvoiceRepository
	Absences   AbsenceRequestRepository
}

// NewRepositories constructs the full repository set over uow.
func NewRepositories(uow *UnitOfWork, log *logger.Logger) *Repositories {
	return &Repositories{
		SyncStatus: NewSyncStatusRepository(uow, log),
		Projects:   NewProjectRepository(uow, log),
		Employees:  NewEmployeeRepository(uow, log),
		Hours:      NewHourRepository(uow, log),
		Invoices:   NewInvoiceRepository(uow, log),
		Absences:   NewAbsenceRequestRepository(uow, log),
	}
}
