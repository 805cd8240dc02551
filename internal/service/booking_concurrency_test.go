package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/nikgolev/TicketGate/internal/inmem"
	"github.com/nikgolev/TicketGate/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// concurrencyFixture wires the booking service against the in-memory
// ledger, index and booking store, so races run against real conditional
// writes instead of mock expectations.
type concurrencyFixture struct {
	svc      *BookingService
	ledger   *inmem.Ledger
	index    *inmem.Index
	bookings *inmem.BookingStore
}

func newConcurrencyFixture(t *testing.T, capacity int) *concurrencyFixture {
	t.Helper()

	ledger := inmem.NewLedger(time.Second)
	ledger.Register("e1", capacity)
	index := inmem.NewIndex()
	bookings := inmem.NewBookingStore()

	eventRepo := mocks.NewMockEventRepo(t)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{
		ID:       "e1",
		Title:    "Load test",
		StartsAt: time.Now().UTC().Add(time.Hour),
		Capacity: capacity,
	}, nil).Maybe()

	userRepo := mocks.NewMockUserRepo(t)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) (*domain.User, error) {
		return &domain.User{ID: id, Name: id}, nil
	}).Maybe()

	notifier := mocks.NewMockBookingNotifier(t)
	notifier.EXPECT().NotifyBookingAdmitted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	svc := NewBookingService(bookings, eventRepo, userRepo, ledger, index, notifier, nil, newTestLogger(t))

	return &concurrencyFixture{svc: svc, ledger: ledger, index: index, bookings: bookings}
}

func (f *concurrencyFixture) admitAll(users []string, ticketCount int) (admitted int, capacityErrs int, duplicateErrs int, otherErrs []error) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, userID := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := f.svc.Admit(context.Background(), userID, "e1", ticketCount)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, domain.ErrNotEnoughTickets):
				capacityErrs++
			case errors.Is(err, domain.ErrAlreadyBooked):
				duplicateErrs++
			default:
				otherErrs = append(otherErrs, err)
			}
		}(userID)
	}
	wg.Wait()
	return admitted, capacityErrs, duplicateErrs, otherErrs
}

func TestBookingService_Concurrent_LastSpotSingleWinner(t *testing.T) {
	f := newConcurrencyFixture(t, 1)

	admitted, capacityErrs, duplicateErrs, otherErrs := f.admitAll([]string{"u1", "u2"}, 1)

	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, capacityErrs)
	assert.Equal(t, 0, duplicateErrs)
	assert.Empty(t, otherErrs)
	assert.Equal(t, 1, f.ledger.Reserved("e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Concurrent_SameUserSingleBooking(t *testing.T) {
	f := newConcurrencyFixture(t, 10)

	admitted, capacityErrs, duplicateErrs, otherErrs := f.admitAll([]string{"u1", "u1"}, 1)

	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, duplicateErrs)
	assert.Equal(t, 0, capacityErrs)
	assert.Empty(t, otherErrs)
	assert.Equal(t, 1, f.ledger.Reserved("e1"))
	assert.True(t, f.index.Has("u1", "e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Concurrent_NeverOversells(t *testing.T) {
	f := newConcurrencyFixture(t, 5)

	users := make([]string, 10)
	for i := range users {
		users[i] = string(rune('a' + i))
	}
	admitted, capacityErrs, duplicateErrs, otherErrs := f.admitAll(users, 1)

	assert.Equal(t, 5, admitted)
	assert.Equal(t, 5, capacityErrs)
	assert.Equal(t, 0, duplicateErrs)
	assert.Empty(t, otherErrs)
	assert.Equal(t, 5, f.ledger.Reserved("e1"))
	assert.Equal(t, f.bookings.ActiveTickets("e1"), f.ledger.Reserved("e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_CancelThenRebook(t *testing.T) {
	f := newConcurrencyFixture(t, 1)
	ctx := context.Background()

	first, err := f.svc.Admit(ctx, "u1", "e1", 1)
	require.NoError(t, err)

	_, err = f.svc.Admit(ctx, "u1", "e1", 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

	require.NoError(t, f.svc.Cancel(ctx, first.ID, "u1", domain.RoleUser))
	assert.Equal(t, 0, f.ledger.Reserved("e1"))
	assert.False(t, f.index.Has("u1", "e1"))

	second, err := f.svc.Admit(ctx, "u1", "e1", 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, f.ledger.Reserved("e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_ConcurrentCancel_ReleasesOnce(t *testing.T) {
	f := newConcurrencyFixture(t, 3)
	ctx := context.Background()

	booking, err := f.svc.Admit(ctx, "u1", "e1", 3)
	require.NoError(t, err)
	require.Equal(t, 3, f.ledger.Reserved("e1"))

	const cancellers = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < cancellers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.svc.Cancel(ctx, booking.ID, "u1", domain.RoleUser); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, f.ledger.Reserved("e1"))
	assert.Equal(t, 0, f.bookings.ActiveTickets("e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_MixedLoad_CountersStayConsistent(t *testing.T) {
	f := newConcurrencyFixture(t, 20)
	ctx := context.Background()

	users := make([]string, 30)
	for i := range users {
		users[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
	}
	admitted, _, _, otherErrs := f.admitAll(users, 1)
	assert.Empty(t, otherErrs)
	assert.Equal(t, 20, admitted)

	// Cancel half of what got through, concurrently.
	all, err := f.bookings.ListByEvent(ctx, "e1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i, b := range all {
		if i%2 != 0 {
			continue
		}
		wg.Add(1)
		go func(b *domain.Booking) {
			defer wg.Done()
			_ = f.svc.Cancel(ctx, b.ID, b.UserID, domain.RoleUser)
		}(b)
	}
	wg.Wait()

	assert.Equal(t, f.bookings.ActiveTickets("e1"), f.ledger.Reserved("e1"))

	time.Sleep(50 * time.Millisecond) // goroutine notifies
}
