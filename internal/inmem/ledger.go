package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
)

// Ledger is the in-memory capacity ledger: one counter pair per event,
// guarded by a per-event lock with a bounded acquisition wait. Counters for
// different events never share a lock.
type Ledger struct {
	lockWait time.Duration

	mu       sync.RWMutex
	counters map[string]*counter
}

type counter struct {
	lock     chan struct{}
	capacity int
	reserved int
}

func NewLedger(lockWait time.Duration) *Ledger {
	return &Ledger{
		lockWait: lockWait,
		counters: make(map[string]*counter),
	}
}

// Register seeds the counter for an event. Re-registering an event resets
// its reserved count and is meant for setup only.
func (l *Ledger) Register(eventID string, capacity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counters[eventID] = &counter{
		lock:     make(chan struct{}, 1),
		capacity: capacity,
	}
}

func (l *Ledger) Reserve(ctx context.Context, eventID string, count int) error {
	c, release, err := l.acquire(ctx, eventID)
	if err != nil {
		return err
	}
	defer release()

	if c.reserved+count > c.capacity {
		return domain.ErrNotEnoughTickets
	}
	c.reserved += count
	return nil
}

func (l *Ledger) Release(ctx context.Context, eventID string, count int) error {
	c, release, err := l.acquire(ctx, eventID)
	if err != nil {
		return err
	}
	defer release()

	c.reserved -= count
	if c.reserved < 0 {
		c.reserved = 0
	}
	return nil
}

// Reserved reports the current reserved count, for observation in tests and
// the audit loop.
func (l *Ledger) Reserved(eventID string) int {
	l.mu.RLock()
	c, ok := l.counters[eventID]
	l.mu.RUnlock()
	if !ok {
		return 0
	}

	c.lock <- struct{}{}
	defer func() { <-c.lock }()
	return c.reserved
}

// acquire takes the event's lock, waiting at most lockWait before giving up
// with ErrContention. The lock is held only for the check-and-mutate.
func (l *Ledger) acquire(ctx context.Context, eventID string) (*counter, func(), error) {
	l.mu.RLock()
	c, ok := l.counters[eventID]
	l.mu.RUnlock()
	if !ok {
		return nil, nil, domain.ErrEventNotFound
	}

	timer := time.NewTimer(l.lockWait)
	defer timer.Stop()

	select {
	case c.lock <- struct{}{}:
		return c, func() { <-c.lock }, nil
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case <-timer.C:
		return nil, nil, domain.ErrContention
	}
}
