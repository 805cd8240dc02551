package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func TestCapacityLedger_Reserve_Success(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewCapacityLedger(db)

	mock.ExpectExec("UPDATE events").
		WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ledger.Reserve(context.Background(), "e1", 2)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapacityLedger_Reserve_NotEnoughTickets(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewCapacityLedger(db)

	mock.ExpectExec("UPDATE events").
		WithArgs("e1", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT capacity FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(5))

	err := ledger.Reserve(context.Background(), "e1", 10)

	assert.ErrorIs(t, err, domain.ErrNotEnoughTickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapacityLedger_Reserve_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewCapacityLedger(db)

	mock.ExpectExec("UPDATE events").
		WithArgs("missing", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT capacity FROM events").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))

	err := ledger.Reserve(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapacityLedger_Release_Success(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewCapacityLedger(db)

	mock.ExpectExec("UPDATE events").
		WithArgs("e1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ledger.Release(context.Background(), "e1", 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCapacityLedger_Release_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	ledger := NewCapacityLedger(db)

	mock.ExpectExec("UPDATE events").
		WithArgs("missing", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := ledger.Release(context.Background(), "missing", 3)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
