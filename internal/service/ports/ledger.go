package ports

import "context"

// CapacityLedger owns the reserved-vs-capacity counter per event. Both
// operations are atomic with respect to concurrent callers on the same
// event; operations on different events never contend.
type CapacityLedger interface {
	// Reserve checks reserved+count <= capacity and increments in a single
	// indivisible step. Returns domain.ErrNotEnoughTickets without mutating
	// when the event cannot fit count more tickets.
	Reserve(ctx context.Context, eventID string, count int) error
	// Release decrements by count, never below zero.
	Release(ctx context.Context, eventID string, count int) error
}
