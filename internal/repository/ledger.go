package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// CapacityLedger keeps the reserved counter on the events row and mutates
// it with single conditional UPDATEs. The row lock taken by UPDATE is the
// serialization point; no lock spans more than one statement, and rows for
// different events never contend.
//
// Counter mutations deliberately avoid the retry helpers: re-running an
// increment after an ambiguous failure could apply it twice.
type CapacityLedger struct {
	db *dbpg.DB
}

func NewCapacityLedger(db *dbpg.DB) *CapacityLedger {
	return &CapacityLedger{db: db}
}

func (l *CapacityLedger) Reserve(ctx context.Context, eventID string, count int) error {
	query := `UPDATE events
			  SET reserved = reserved + $2, updated_at = now()
			  WHERE id = $1 AND reserved + $2 <= capacity`
	res, err := l.db.Master.ExecContext(ctx, query, eventID, count)
	if err != nil {
		return fmt.Errorf("reserve capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		// Either the event is gone or the tickets do not fit.
		var capacity int
		checkQuery := `SELECT capacity FROM events WHERE id = $1`
		if scanErr := l.db.Master.QueryRowContext(ctx, checkQuery, eventID).Scan(&capacity); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("check event: %w", scanErr)
		}
		return domain.ErrNotEnoughTickets
	}

	return nil
}

func (l *CapacityLedger) Release(ctx context.Context, eventID string, count int) error {
	query := `UPDATE events
			  SET reserved = GREATEST(reserved - $2, 0), updated_at = now()
			  WHERE id = $1`
	res, err := l.db.Master.ExecContext(ctx, query, eventID, count)
	if err != nil {
		return fmt.Errorf("release capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
