package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiersma/grippsync/internal/logger"
)

func newTestUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	wrapped := &DB{DB: db, logger: l, errorClassifier: NewPostgresErrorClassifier()}

	return NewUnitOfWork(wrapped, l), mock, db
}

func TestUnitOfWork_BeginCommit(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	uow, _, db := newTestUnitOfWork(t)
	defer db.Close()

	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
}

func TestUnitOfWork_RollbackWithoutBeginIsNoop(t *testing.T) {
	uow, _, db := newTestUnitOfWork(t)
	defer db.Close()

	assert.NoError(t, uow.Rollback())
}

func TestUnitOfWork_NestedBeginJoinsOuterTransaction(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	// one real BEGIN and one real COMMIT regardless of join depth
	mock.ExpectBegin()
	mock.ExpectCommit()

	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))

	require.NoError(t, uow.Commit()) // inner: decrements depth only
	require.NoError(t, uow.Commit()) // outer: real commit

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BrokenAfterFailedCommit(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	commitErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	ctx := context.Background()

	require.NoError(t, uow.Begin(ctx))

	err := uow.Commit()
	require.ErrorIs(t, err, ErrCommittingTransaction)

	// every operation refuses to run until an explicit rollback resets it
	assert.ErrorIs(t, uow.Begin(ctx), ErrTransactionBroken)
	assert.ErrorIs(t, uow.Commit(), ErrTransactionBroken)

	require.NoError(t, uow.Rollback())

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Commit())
}

func TestUnitOfWork_WithTransactionRecoversFromFailedCommit(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := uow.WithTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.ErrorIs(t, err, ErrCommittingTransaction)

	// the envelope resets itself: statements run on the bare connection
	// again and the next transaction opens normally
	mock.ExpectExec("UPDATE sync_status").WillReturnResult(sqlmock.NewResult(0, 1))
	_, execErr := uow.querier().ExecContext(context.Background(), "UPDATE sync_status SET last_sync_status = $1", "error")
	require.NoError(t, execErr)

	mock.ExpectBegin()
	mock.ExpectCommit()
	require.NoError(t, uow.WithTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	}))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_ConnectionBypassesOpenTransaction(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	require.NoError(t, uow.Begin(context.Background()))

	assert.Equal(t, querier(db), uow.connection())
	assert.NotEqual(t, uow.connection(), uow.querier())

	require.NoError(t, uow.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_WithTransactionCommitsOnSuccess(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sync_status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, execErr := uow.querier().ExecContext(ctx, "UPDATE sync_status SET last_sync_status = $1", "success")
		return execErr
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_WithTransactionRollsBackOnError(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("row rejected")

	err := uow.WithTransaction(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	require.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_NestedWithTransactionSharesEnvelope(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.WithTransaction(context.Background(), func(ctx context.Context) error {
		return uow.WithTransaction(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_QuerierOutsideTransactionIsConnection(t *testing.T) {
	uow, mock, db := newTestUnitOfWork(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_status").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := uow.querier().ExecContext(context.Background(), "UPDATE sync_status SET last_sync_status = $1", "pending")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
