package ports

import (
	"context"

	"github.com/nikgolev/TicketGate/internal/domain"
)

// EventCache is a read-side cache for the upcoming-events listing. A nil
// cache is valid: the service falls through to the repository.
type EventCache interface {
	GetUpcoming(ctx context.Context) ([]*domain.Event, error)
	SetUpcoming(ctx context.Context, events []*domain.Event) error
	Invalidate(ctx context.Context) error
}
