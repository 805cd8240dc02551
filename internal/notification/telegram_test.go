package notification

import (
	"context"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestTelegramNotifier_DisabledBotSkips(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Name: "Alice"}
	event := &domain.Event{ID: "e1", Title: "Concert", StartsAt: time.Now().UTC()}
	booking := &domain.Booking{ID: "b1", TicketCount: 2}

	// Must be a silent no-op without a bot.
	n.NotifyBookingAdmitted(context.Background(), user, event, booking)
	n.NotifyBookingCancelled(context.Background(), user, event, booking)
}

func TestTelegramNotifier_NoChatIDSkips(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	user := &domain.User{ID: "u1"} // no telegram chat bound
	event := &domain.Event{ID: "e1", Title: "Concert"}
	booking := &domain.Booking{ID: "b1", TicketCount: 1}

	n.NotifyBookingAdmitted(context.Background(), user, event, booking)
}
