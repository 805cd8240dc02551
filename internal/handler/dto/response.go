package dto

import (
	"time"

	"github.com/nikgolev/TicketGate/internal/domain"
)

type EventResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	StartsAt       string  `json:"starts_at"`
	Capacity       int     `json:"capacity"`
	AvailableSpots int     `json:"available_spots"`
	Price          float64 `json:"price"`
	CreatedBy      string  `json:"created_by"`
	CreatedAt      string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse `json:"event"`
	AvailableSpots int           `json:"available_spots"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	TicketCount int    `json:"ticket_count"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Location:       e.Location,
		StartsAt:       e.StartsAt.Format(time.RFC3339),
		Capacity:       e.Capacity,
		AvailableSpots: e.Available(),
		Price:          e.Price,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AvailableSpots: d.AvailableSpots,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		TicketCount: b.TicketCount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
