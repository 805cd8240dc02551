package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/nikgolev/TicketGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
	cache       ports.EventCache
	logger      logger.Logger
}

// NewEventService wires the event CRUD. cache may be nil; listing then goes
// straight to the repository.
func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo, cache ports.EventCache, logger logger.Logger) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.Description, input.Location, input.StartsAt, input.Capacity, input.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		Price:       input.Price,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.invalidateCache(ctx)
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput, requesterID string, role domain.Role) (*domain.Event, error) {
	if err := validateEventInput(input.Title, input.Description, input.Location, input.StartsAt, input.Capacity, input.Price); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != requesterID && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.StartsAt = input.StartsAt
	event.Capacity = input.Capacity
	event.Price = input.Price

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id, requesterID string, role domain.Role) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.CreatedBy != requesterID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUpcoming(ctx)
		if err != nil {
			s.logger.Warn("event cache read failed", logger.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	events, err := s.repo.ListUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err = s.cache.SetUpcoming(ctx, events); err != nil {
			s.logger.Warn("event cache write failed", logger.String("error", err.Error()))
		}
	}

	return events, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.EventDetails{
		Event:          *event,
		AvailableSpots: event.Available(),
	}, nil
}

// ListBookings returns an event's bookings to its creator or an admin.
func (s *EventService) ListBookings(ctx context.Context, eventID, requesterID string, role domain.Role) ([]*domain.Booking, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != requesterID && role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	return s.bookingRepo.ListByEvent(ctx, eventID)
}

func (s *EventService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn("event cache invalidation failed", logger.String("error", err.Error()))
	}
}

func validateEventInput(title, description, location string, startsAt time.Time, capacity int, price float64) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if !startsAt.After(time.Now().UTC()) {
		return fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	return nil
}
