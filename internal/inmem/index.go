package inmem

import (
	"context"
	"sync"

	"github.com/nikgolev/TicketGate/internal/domain"
)

type pairKey struct {
	userID  string
	eventID string
}

// Index is the in-memory active-booking index. Insert is a conditional
// write under one mutex, so two concurrent inserts for the same pair cannot
// both succeed.
type Index struct {
	mu     sync.Mutex
	active map[pairKey]string
}

func NewIndex() *Index {
	return &Index{active: make(map[pairKey]string)}
}

func (i *Index) Insert(_ context.Context, userID, eventID, bookingID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	key := pairKey{userID: userID, eventID: eventID}
	if _, exists := i.active[key]; exists {
		return domain.ErrAlreadyBooked
	}
	i.active[key] = bookingID
	return nil
}

func (i *Index) Remove(_ context.Context, userID, eventID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.active, pairKey{userID: userID, eventID: eventID})
	return nil
}

// Has reports whether the pair currently holds an active booking.
func (i *Index) Has(userID, eventID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.active[pairKey{userID: userID, eventID: eventID}]
	return ok
}
