package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is created only by a successful admission and is mutated exactly
// once, by cancellation. Cancelled is terminal; rows are kept for history.
type Booking struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	UserID      string        `json:"user_id"`
	TicketCount int           `json:"ticket_count"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CounterDrift is a mismatch between an event's reserved counter and the sum
// of ticket counts over its active bookings, reported by the audit loop.
type CounterDrift struct {
	EventID       string
	Reserved      int
	ActiveTickets int
}
