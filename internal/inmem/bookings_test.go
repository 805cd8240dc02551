package inmem

import (
	"context"
	"sync"
	"testing"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStore_GetByID_ReturnsCopy(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b1", Status: domain.BookingStatusActive}))

	got, err := s.GetByID(ctx, "b1")
	require.NoError(t, err)

	got.Status = domain.BookingStatusCancelled

	again, err := s.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, again.Status)
}

func TestBookingStore_MarkCancelled_NotFound(t *testing.T) {
	s := NewBookingStore()

	err := s.MarkCancelled(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingStore_MarkCancelled_OnlyOneWinner(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b1", Status: domain.BookingStatusActive}))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.MarkCancelled(ctx, "b1"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestBookingStore_ActiveTickets(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b1", EventID: "e1", TicketCount: 2, Status: domain.BookingStatusActive}))
	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b2", EventID: "e1", TicketCount: 3, Status: domain.BookingStatusActive}))
	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b3", EventID: "e1", TicketCount: 4, Status: domain.BookingStatusCancelled}))
	require.NoError(t, s.Insert(ctx, &domain.Booking{ID: "b4", EventID: "e2", TicketCount: 7, Status: domain.BookingStatusActive}))

	assert.Equal(t, 5, s.ActiveTickets("e1"))
	assert.Equal(t, 7, s.ActiveTickets("e2"))
}
