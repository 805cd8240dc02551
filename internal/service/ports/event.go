package ports

import (
	"context"

	"github.com/nikgolev/TicketGate/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	// Update refuses to shrink capacity below the current reserved count.
	Update(ctx context.Context, e *domain.Event) error
	// Delete refuses while the event still has reserved tickets.
	Delete(ctx context.Context, id string) error
}
