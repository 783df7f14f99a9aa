package models

import "time"

// Lifecycle states of a per-entity sync record. Every run moves the record
// from its previous terminal state back through in_progress, so the cycle
// never ends.
const (
	SyncStatusPending    = "pending"
	SyncStatusInProgress = "in_progress"
	SyncStatusSuccess    = "success"
	SyncStatusError      = "error"
)

// Sync modes.
const (
	SyncModeFull        = "full"
	SyncModeIncremental = "incremental"
)

// Names of the mirrored entities.
const (
	EntityProjects        = "projects"
	EntityEmployees       = "employees"
	EntityHours           = "hours"
	EntityInvoices        = "invoices"
	EntityAbsenceRequests = "absencerequests"
)

// SyncEntities lists every mirrored entity in its fixed dependency order:
// projects and employees are referenced by hours, invoices own their lines,
// absence requests own theirs. Runs always walk this order.
var SyncEntities = []string{
	EntityProjects,
	EntityEmployees,
	EntityHours,
	EntityInvoices,
	EntityAbsenceRequests,
}

// SyncStatus is the persisted bookkeeping row for one entity. A row is
// created once at bootstrap and mutated at the start and end of every run;
// it is never deleted.
type SyncStatus struct {
	ID     int64  `json:"-"`
	Entity string `json:"entity"`

	// LastSyncAt is the start timestamp of the last successful run, of
	// either mode. The next incremental run filters on it.
	LastSyncAt            *time.Time `json:"last_sync_at,omitempty"`
	LastIncrementalSyncAt *time.Time `json:"last_incremental_sync_at,omitempty"`
	LastFullSyncAt        *time.Time `json:"last_full_sync_at,omitempty"`

	// SyncInterval is the per-entity scheduling hint; zero means the
	// process-wide default applies.
	SyncInterval time.Duration `json:"sync_interval,omitempty"`

	LastSyncCount  int    `json:"last_sync_count"`
	LastSyncStatus string `json:"last_sync_status"`
	LastSyncError  string `json:"last_sync_error,omitempty"`
}

// TableName returns the name of the database table
// associated with the SyncStatus model.
func (s SyncStatus) TableName() string {
	return "sync_status"
}
