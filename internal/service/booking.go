package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/nikgolev/TicketGate/internal/service/ports"
	"github.com/nikgolev/TicketGate/internal/stream"
	"github.com/nikgolev/TicketGate/internal/ticket"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// BookingService runs the admission and cancellation workflows. It owns no
// shared mutable state itself: every atomic step lives behind the ledger,
// index and repository ports, and the service stitches them together with
// compensation on partial failure.
//
// Admission order is index first, ledger second. Reserving capacity before
// claiming the (user, event) slot would let two requests from the same user
// both pass the ledger and race the index.
type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	ledger      ports.CapacityLedger
	index       ports.ActiveIndex
	notifier    ports.BookingNotifier
	publisher   ports.StreamPublisher
	logger      logger.Logger
	strategy    retry.Strategy
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	ledger ports.CapacityLedger,
	index ports.ActiveIndex,
	notifier ports.BookingNotifier,
	publisher ports.StreamPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		ledger:      ledger,
		index:       index,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    50 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Admit decides whether a reservation may proceed and creates the booking.
// A rejected attempt leaves no record and no counter change.
func (s *BookingService) Admit(ctx context.Context, userID, eventID string, ticketCount int) (*domain.Booking, error) {
	if ticketCount < 1 {
		return nil, fmt.Errorf("%w: ticket_count must be at least 1", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !event.StartsAt.After(time.Now().UTC()) {
		return nil, domain.ErrPastEvent
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	var booking *domain.Booking
	err = s.retryContention(ctx, func() error {
		var attemptErr error
		booking, attemptErr = s.attemptAdmission(ctx, userID, eventID, ticketCount)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking admitted",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("ticket_count", ticketCount),
	)

	go s.notifier.NotifyBookingAdmitted(context.WithoutCancel(ctx), user, event, booking)
	s.publish(ctx, stream.EventBookingAdmitted, booking)

	return booking, nil
}

// attemptAdmission is one pass of the two-phase workflow: claim the
// (user, event) slot, then the capacity, then persist. Each later failure
// unwinds the earlier steps before returning.
func (s *BookingService) attemptAdmission(ctx context.Context, userID, eventID string, ticketCount int) (*domain.Booking, error) {
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		EventID:     eventID,
		UserID:      userID,
		TicketCount: ticketCount,
		Status:      domain.BookingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.index.Insert(ctx, userID, eventID, booking.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) || errors.Is(err, domain.ErrContention) {
			return nil, err
		}
		return nil, fmt.Errorf("claim booking slot: %w", err)
	}

	if err := s.ledger.Reserve(ctx, eventID, ticketCount); err != nil {
		if compErr := s.compensateIndex(ctx, userID, eventID); compErr != nil {
			return nil, compErr
		}
		if errors.Is(err, domain.ErrNotEnoughTickets) || errors.Is(err, domain.ErrContention) {
			return nil, err
		}
		return nil, fmt.Errorf("reserve capacity: %w", err)
	}

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		if compErr := s.compensateReservation(ctx, booking); compErr != nil {
			return nil, compErr
		}
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	return booking, nil
}

// Cancel retires an active booking and returns its capacity exactly once.
// Only the owner or an admin may cancel.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID string, role domain.Role) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != requesterID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if booking.Status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	// The status CAS is the gate: of two concurrent cancellations only one
	// passes, so capacity is released exactly once.
	if err = s.bookingRepo.MarkCancelled(ctx, bookingID); err != nil {
		return err
	}

	// From here on the booking is already cancelled; the release and the
	// index removal must finish even if the caller went away.
	detached := context.WithoutCancel(ctx)

	err = s.retryContention(detached, func() error {
		return s.ledger.Release(detached, booking.EventID, booking.TicketCount)
	})
	if err != nil {
		s.logger.Error("cancellation left reserved capacity unreleased",
			logger.String("booking_id", bookingID),
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("release capacity: %w", err)
	}

	if err = s.index.Remove(detached, booking.UserID, booking.EventID); err != nil {
		s.logger.Error("cancellation left active-booking entry behind",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("remove booking slot: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
	)

	booking.Status = domain.BookingStatusCancelled
	go s.notifyCancelled(context.WithoutCancel(ctx), booking)
	s.publish(ctx, stream.EventBookingCancelled, booking)

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Get returns a booking scoped to its owner; admins may fetch any booking.
// Others get not-found rather than a permission hint.
func (s *BookingService) Get(ctx context.Context, bookingID, requesterID string, role domain.Role) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID && role != domain.RoleAdmin {
		return nil, domain.ErrBookingNotFound
	}

	return booking, nil
}

// Ticket renders the e-ticket PDF for an active booking.
func (s *BookingService) Ticket(ctx context.Context, bookingID, requesterID string, role domain.Role) ([]byte, error) {
	booking, err := s.Get(ctx, bookingID, requesterID, role)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusActive {
		return nil, domain.ErrAlreadyCancelled
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return ticket.Build(booking, event, user)
}

// compensateIndex removes the slot claimed in the first step. Run on a
// detached context: the rollback must not depend on the caller still
// waiting. A failed compensation is escalated, never ignored.
func (s *BookingService) compensateIndex(ctx context.Context, userID, eventID string) error {
	if err := s.index.Remove(context.WithoutCancel(ctx), userID, eventID); err != nil {
		s.logger.Error("admission rollback failed to remove booking slot",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("rollback booking slot: %w", err)
	}
	return nil
}

// compensateReservation unwinds both the ledger reservation and the index
// entry after a persistence failure.
func (s *BookingService) compensateReservation(ctx context.Context, booking *domain.Booking) error {
	detached := context.WithoutCancel(ctx)
	if err := s.ledger.Release(detached, booking.EventID, booking.TicketCount); err != nil {
		s.logger.Error("admission rollback failed to release capacity",
			logger.String("event_id", booking.EventID),
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("rollback capacity: %w", err)
	}
	return s.compensateIndex(ctx, booking.UserID, booking.EventID)
}

// retryContention re-runs fn on ErrContention with backoff, a bounded
// number of attempts. All other errors surface immediately.
func (s *BookingService) retryContention(ctx context.Context, fn func() error) error {
	delay := s.strategy.Delay
	var lastErr error
	for attempt := 0; attempt < s.strategy.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * float64(s.strategy.Backoff))
		}

		lastErr = fn()
		if lastErr == nil || !errors.Is(lastErr, domain.ErrContention) {
			return lastErr
		}
	}
	return lastErr
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", booking.UserID),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", booking.EventID),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, user, event, booking)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishBookingEvent(context.WithoutCancel(ctx), eventType, booking); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("type", eventType),
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}
}
