package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "location", "starts_at",
			"capacity", "reserved", "price", "created_by", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_Update_CapacityBelowReserved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	e := &domain.Event{
		ID:       "e1",
		Title:    "Concert",
		StartsAt: time.Now().UTC().Add(time.Hour),
		Capacity: 10,
	}

	mock.ExpectExec("UPDATE events").
		WithArgs("e1", e.Title, e.Description, e.Location, e.StartsAt, 10, e.Price).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT reserved FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"reserved"}).AddRow(25))

	err := repo.Update(context.Background(), e)

	assert.ErrorIs(t, err, domain.ErrCapacityBelowReserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete_RefusedWhileReserved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec("DELETE FROM events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT reserved FROM events").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"reserved"}).AddRow(4))

	err := repo.Delete(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrEventHasBookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectExec("DELETE FROM events").
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "e1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CheckCounterDrift(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM events").
		WithArgs(domain.BookingStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reserved", "active_tickets"}).
			AddRow("e1", 5, 3))

	drifts, err := repo.CheckCounterDrift(context.Background())

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "e1", drifts[0].EventID)
	assert.Equal(t, 5, drifts[0].Reserved)
	assert.Equal(t, 3, drifts[0].ActiveTickets)
}
