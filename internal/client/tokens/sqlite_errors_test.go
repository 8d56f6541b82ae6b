package tokens

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGet_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(`SELECT value FROM tokens`).
		WithArgs(SlotAccess).
		WillReturnError(errors.New("disk I/O error"))

	r := NewSQLiteRepository(db)
	_, err = r.Get(context.Background(), SlotAccess)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(`INSERT INTO tokens`).
		WillReturnError(errors.New("database is locked"))

	r := NewSQLiteRepository(db)
	require.Error(t, r.Set(context.Background(), SlotAccess, "T1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPair_RollsBackWhenSecondWriteFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(SlotAccess, "T1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(SlotRefresh, "R1").
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	require.Error(t, r.SetPair(context.Background(), "T1", "R1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPair_CommitsWhenBothWritesSucceed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(SlotAccess, "T1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(SlotRefresh, "R1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := NewSQLiteRepository(db)
	require.NoError(t, r.SetPair(context.Background(), "T1", "R1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
