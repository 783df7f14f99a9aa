package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncStatusNotFound is returned when no bookkeeping row exists for
	// the requested entity name.
	ErrSyncStatusNotFound = errors.New("sync status was not found")

	// ErrInvalidRow is returned when a remote row fails validation before
	// it can be written to the mirror (e.g. a missing remote identifier).
	// The sync routines skip such rows and continue.
	ErrInvalidRow = errors.New("invalid mirror row")

	// ErrRowNotSaved is returned when an upsert completes without error
	// but the number of affected rows is zero, indicating that nothing
	// was actually persisted.
	ErrRowNotSaved = errors.New("mirror row was not saved")
)

// Low-level query errors wrapped by every repository method.
var (
	ErrBuildingQuery      = errors.New("failed to build query")
	ErrExecutingQuery     = errors.New("failed to execute query")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("error during rows iteration")
	ErrPreparingStatement = errors.New("failed to prepare statement")
	ErrExecutingStatement = errors.New("failed to execute prepared statement")
)

// Transaction discipline errors returned by [UnitOfWork].
var (
	// ErrNoTransaction is returned by Commit when no transaction is open.
	ErrNoTransaction = errors.New("no open transaction")

	// ErrTransactionBroken is returned when a transaction whose commit
	// failed is reused without an explicit rollback first.
	ErrTransactionBroken = errors.New("transaction broken by failed commit, rollback required")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
