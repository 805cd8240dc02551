package ports

import (
	"context"

	"github.com/nikgolev/TicketGate/internal/domain"
)

// StreamPublisher emits booking lifecycle records for downstream consumers
// (analytics, audit). Publishing is best-effort and never blocks admission.
type StreamPublisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, b *domain.Booking) error
}
