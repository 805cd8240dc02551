package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// ActiveIndex maps every active (user, event) pair to its booking in the
// active_bookings table. The primary key on (user_id, event_id) makes the
// insert a conditional write: the second concurrent caller hits a unique
// violation instead of passing a stale check.
type ActiveIndex struct {
	db *dbpg.DB
}

func NewActiveIndex(db *dbpg.DB) *ActiveIndex {
	return &ActiveIndex{db: db}
}

func (i *ActiveIndex) Insert(ctx context.Context, userID, eventID, bookingID string) error {
	query := `INSERT INTO active_bookings (user_id, event_id, booking_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := i.db.Master.ExecContext(ctx, query, userID, eventID, bookingID, time.Now().UTC())
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert active booking: %w", err)
	}

	return nil
}

func (i *ActiveIndex) Remove(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM active_bookings WHERE user_id = $1 AND event_id = $2`
	if _, err := i.db.Master.ExecContext(ctx, query, userID, eventID); err != nil {
		return fmt.Errorf("remove active booking: %w", err)
	}

	return nil
}
