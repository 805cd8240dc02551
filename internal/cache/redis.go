package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/redis/go-redis/v9"
)

const upcomingEventsKey = "cache:events:upcoming"

// EventCache keeps the upcoming-events listing in Redis. A cache miss is
// reported as a nil slice, not an error.
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventCache(addr, password string, db int, ttl time.Duration) *EventCache {
	return &EventCache{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl:    ttl,
	}
}

func (c *EventCache) GetUpcoming(ctx context.Context) ([]*domain.Event, error) {
	data, err := c.client.Get(ctx, upcomingEventsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached events: %w", err)
	}

	var events []*domain.Event
	if err = json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode cached events: %w", err)
	}

	return events, nil
}

func (c *EventCache) SetUpcoming(ctx context.Context, events []*domain.Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	return c.client.Set(ctx, upcomingEventsKey, payload, c.ttl).Err()
}

func (c *EventCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, upcomingEventsKey).Err()
}

func (c *EventCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *EventCache) Close() error {
	return c.client.Close()
}
