package ports

import (
	"context"

	"github.com/nikgolev/TicketGate/internal/domain"
)

type BookingRepo interface {
	Insert(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// MarkCancelled transitions status active -> cancelled conditioned on
	// the booking still being active. Returns domain.ErrAlreadyCancelled
	// when a concurrent cancellation won the transition.
	MarkCancelled(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}
