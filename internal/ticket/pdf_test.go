package ticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	booking := &domain.Booking{
		ID:          "b1",
		EventID:     "e1",
		UserID:      "u1",
		TicketCount: 2,
		Status:      domain.BookingStatusActive,
		CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	event := &domain.Event{
		ID:       "e1",
		Title:    "Go Conference",
		Location: "Moscow",
		StartsAt: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		Price:    25.50,
	}
	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}

	data, err := Build(booking, event, user)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}
