package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, location, starts_at, capacity, reserved, price, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Location, e.StartsAt,
		e.Capacity, e.Price, e.CreatedBy, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, location, starts_at, capacity, reserved, price, created_by, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt,
		&e.Capacity, &e.Reserved, &e.Price, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, location, starts_at, capacity, reserved, price, created_by, created_at, updated_at
			  FROM events
			  WHERE starts_at >= now()
			  ORDER BY starts_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt,
			&e.Capacity, &e.Reserved, &e.Price, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Update rewrites the editable fields. The reserved <= $6 condition keeps a
// capacity shrink from undercutting tickets that are already reserved.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, location = $4, starts_at = $5,
			      capacity = $6, price = $7, updated_at = now()
			  WHERE id = $1 AND reserved <= $6`
	res, err := r.db.Master.ExecContext(
		ctx, query, e.ID, e.Title, e.Description, e.Location,
		e.StartsAt, e.Capacity, e.Price,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		var reserved int
		checkQuery := `SELECT reserved FROM events WHERE id = $1`
		if scanErr := r.db.Master.QueryRowContext(ctx, checkQuery, e.ID).Scan(&reserved); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event: %w", scanErr)
		}
		return domain.ErrCapacityBelowReserved
	}

	return nil
}

// Delete removes an event and, through ON DELETE CASCADE, its booking
// history. The reserved = 0 condition refuses while tickets are held.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1 AND reserved = 0`
	res, err := r.db.Master.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		var reserved int
		checkQuery := `SELECT reserved FROM events WHERE id = $1`
		if scanErr := r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&reserved); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event: %w", scanErr)
		}
		return domain.ErrEventHasBookings
	}

	return nil
}

// CheckCounterDrift compares each event's reserved counter with the sum of
// ticket counts over its active bookings and returns the events where the
// two disagree.
func (r *EventRepository) CheckCounterDrift(ctx context.Context) ([]domain.CounterDrift, error) {
	query := `SELECT e.id, e.reserved, COALESCE(SUM(b.ticket_count), 0) AS active_tickets
			  FROM events e
			  LEFT JOIN bookings b ON b.event_id = e.id AND b.status = $1
			  GROUP BY e.id, e.reserved
			  HAVING e.reserved <> COALESCE(SUM(b.ticket_count), 0)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("check counter drift: %w", err)
	}
	defer rows.Close()

	var res []domain.CounterDrift
	for rows.Next() {
		var d domain.CounterDrift
		if err = rows.Scan(&d.EventID, &d.Reserved, &d.ActiveTickets); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}
