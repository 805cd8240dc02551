package ports

import "context"

// ActiveIndex enforces at most one active booking per (user, event) pair
// through an atomic conditional insert. A plain check-then-insert would let
// two concurrent requests both pass the check; implementations must make
// the second caller fail instead.
type ActiveIndex interface {
	// Insert registers bookingID under (userID, eventID). Returns
	// domain.ErrAlreadyBooked when the pair already holds an active booking.
	Insert(ctx context.Context, userID, eventID, bookingID string) error
	// Remove frees the pair so the user can book the event again. Removing
	// an absent entry is a no-op.
	Remove(ctx context.Context, userID, eventID string) error
}
