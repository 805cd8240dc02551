package ports

import (
	"context"

	"github.com/nikgolev/TicketGate/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingAdmitted(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
}
