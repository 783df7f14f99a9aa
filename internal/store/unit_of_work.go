package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/mwiersma/grippsync/internal/logger"
)

// UnitOfWork is the transactional envelope around the mirror repositories.
// At most one transaction is open per instance at a time; a nested Begin or
// WithTransaction joins the already-open transaction instead of starting a
// new one. Repositories obtained from NewRepositories route their statements
// through the open transaction, or through the bare connection when none is
// open.
type UnitOfWork struct {
	db  *DB
	log *logger.Logger

	mu     sync.Mutex
	tx     *sql.Tx
	depth  int
	broken bool
}

// NewUnitOfWork constructs a UnitOfWork bound to one database connection.
func NewUnitOfWork(db *DB, log *logger.Logger) *UnitOfWork {
	if db.errorClassifier == nil {
		db.errorClassifier = NewPostgresErrorClassifier()
	}

	log.Debug().Msg("creating unit of work")
	return &UnitOfWork{db: db, log: log}
}

// Begin opens a transaction, or joins the one already open. After a failed
// commit the unit of work is unusable until Rollback is called.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.broken {
		return ErrTransactionBroken
	}
	if u.tx != nil {
		u.depth++
		return nil
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		u.log.Err(err).Str("func", "*UnitOfWork.Begin").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	u.tx = tx
	u.depth = 1
	return nil
}

// Commit commits the open transaction. A nested join only decrements the
// join depth; the outermost call performs the actual commit. A failed commit
// marks the unit of work broken; it must be rolled back before reuse.
func (u *UnitOfWork) Commit() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.broken {
		return ErrTransactionBroken
	}
	if u.tx == nil {
		return ErrNoTransaction
	}
	if u.depth > 1 {
		u.depth--
		return nil
	}

	if err := u.tx.Commit(); err != nil {
		u.broken = true
		u.log.Err(err).
			Str("func", "*UnitOfWork.Commit").
			Bool("retryable", u.db.errorClassifier.Classify(err) == Retryable).
			Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	u.tx = nil
	u.depth = 0
	return nil
}

// Rollback aborts the open transaction and resets a broken unit of work.
// Calling it with nothing open is a no-op, which lets deferred rollbacks
// coexist with explicit commits.
func (u *UnitOfWork) Rollback() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.tx
	u.tx = nil
	u.depth = 0
	u.broken = false

	if tx == nil {
		return nil
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		u.log.Err(err).Str("func", "*UnitOfWork.Rollback").Msg("error rolling back transaction")
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// WithTransaction runs fn inside a transaction: it commits on normal return
// and rolls back when fn returns an error. A nested call joins the open
// transaction, so helpers can use WithTransaction freely without breaking an
// enclosing envelope.
func (u *UnitOfWork) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := u.Begin(ctx); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		if rbErr := u.Rollback(); rbErr != nil {
			u.log.Err(rbErr).Str("func", "*UnitOfWork.WithTransaction").Msg("rollback after failure also failed")
		}
		return err
	}

	if err := u.Commit(); err != nil {
		// a failed commit leaves the envelope broken; roll back here so
		// the unit of work is usable again for the next transaction
		if rbErr := u.Rollback(); rbErr != nil {
			u.log.Err(rbErr).Str("func", "*UnitOfWork.WithTransaction").Msg("rollback after failed commit also failed")
		}
		return err
	}

	return nil
}

// querier returns the statement target repositories should use right now:
// the open transaction, or the bare connection outside of one.
func (u *UnitOfWork) querier() querier {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx != nil {
		return u.tx
	}
	return u.db.DB
}

// connection returns the bare database connection, bypassing any open
// transaction. Bookkeeping statements use it so concurrent readers observe
// only committed state and never share another goroutine's transaction.
func (u *UnitOfWork) connection() querier {
	return u.db.DB
}
