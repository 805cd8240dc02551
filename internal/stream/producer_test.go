package stream

import (
	"context"
	"testing"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProducer_NoBrokersIsNoop(t *testing.T) {
	p := NewProducer(nil, "bookings")

	err := p.PublishBookingEvent(context.Background(), EventBookingAdmitted, &domain.Booking{ID: "b1"})

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestProducer_NoTopicIsNoop(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "")

	err := p.PublishBookingEvent(context.Background(), EventBookingCancelled, &domain.Booking{ID: "b1"})

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
