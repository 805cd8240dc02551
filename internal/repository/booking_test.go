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

func TestBookingRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:          "b1",
		EventID:     "e1",
		UserID:      "u1",
		TicketCount: 2,
		Status:      domain.BookingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("b1", "e1", "u1", 2, domain.BookingStatusActive, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), b)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "event_id", "user_id", "ticket_count", "status", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_MarkCancelled_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", domain.BookingStatusCancelled, domain.BookingStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCancelled(context.Background(), "b1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_MarkCancelled_LostCAS(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("UPDATE bookings").
		WithArgs("b1", domain.BookingStatusCancelled, domain.BookingStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM bookings").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	err := repo.MarkCancelled(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_MarkCancelled_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("UPDATE bookings").
		WithArgs("missing", domain.BookingStatusCancelled, domain.BookingStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	err := repo.MarkCancelled(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "event_id", "user_id", "ticket_count", "status", "created_at", "updated_at",
		}).
			AddRow("b2", "e1", "u1", 1, "active", now, now).
			AddRow("b1", "e2", "u1", 3, "cancelled", now, now))

	bookings, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b2", bookings[0].ID)
	assert.Equal(t, domain.BookingStatusCancelled, bookings[1].Status)
}
