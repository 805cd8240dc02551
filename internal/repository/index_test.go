package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveIndex_Insert_Success(t *testing.T) {
	db, mock := newMockDB(t)
	idx := NewActiveIndex(db)

	mock.ExpectExec("INSERT INTO active_bookings").
		WithArgs("u1", "e1", "b1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := idx.Insert(context.Background(), "u1", "e1", "b1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveIndex_Insert_DuplicatePair(t *testing.T) {
	db, mock := newMockDB(t)
	idx := NewActiveIndex(db)

	mock.ExpectExec("INSERT INTO active_bookings").
		WithArgs("u1", "e1", "b2", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	err := idx.Insert(context.Background(), "u1", "e1", "b2")

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveIndex_Remove(t *testing.T) {
	db, mock := newMockDB(t)
	idx := NewActiveIndex(db)

	mock.ExpectExec("DELETE FROM active_bookings").
		WithArgs("u1", "e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := idx.Remove(context.Background(), "u1", "e1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
