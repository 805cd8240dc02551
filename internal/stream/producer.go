package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	EventBookingAdmitted  = "booking_admitted"
	EventBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	TicketCount int       `json:"ticket_count"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Producer publishes booking lifecycle records to Kafka. With no brokers
// configured it degrades to a no-op so the engine runs without a broker.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) PublishBookingEvent(ctx context.Context, eventType string, b *domain.Booking) error {
	if p.writer == nil {
		return nil
	}

	record := BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		TicketCount: b.TicketCount,
		Status:      string(b.Status),
		OccurredAt:  time.Now().UTC(),
	}

	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(b.ID),
		Value: value,
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
