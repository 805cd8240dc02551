package inmem

import (
	"context"
	"sync"

	"github.com/nikgolev/TicketGate/internal/domain"
)

// BookingStore keeps booking records in memory. The status transition is a
// compare-and-swap under the store mutex, matching the SQL backend's
// conditional update.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[string]*domain.Booking)}
}

func (s *BookingStore) Insert(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	s.bookings[b.ID] = &stored
	return nil
}

func (s *BookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *BookingStore) MarkCancelled(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != domain.BookingStatusActive {
		return domain.ErrAlreadyCancelled
	}
	b.Status = domain.BookingStatusCancelled
	return nil
}

func (s *BookingStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			copied := *b
			res = append(res, &copied)
		}
	}
	return res, nil
}

func (s *BookingStore) ListByEvent(_ context.Context, eventID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.EventID == eventID {
			copied := *b
			res = append(res, &copied)
		}
	}
	return res, nil
}

// ActiveTickets sums ticket counts over active bookings for an event. Used
// by tests to check the ledger against the booking set.
func (s *BookingStore) ActiveTickets(eventID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, b := range s.bookings {
		if b.EventID == eventID && b.Status == domain.BookingStatusActive {
			total += b.TicketCount
		}
	}
	return total
}
