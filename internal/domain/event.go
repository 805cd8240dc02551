package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	Reserved    int       `json:"reserved"`
	Price       float64   `json:"price"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Available reports how many tickets are still free.
func (e *Event) Available() int {
	return e.Capacity - e.Reserved
}

type EventDetails struct {
	Event          Event `json:"event"`
	AvailableSpots int   `json:"available_spots"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
	Price       float64
}

type UpdateEventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
	Price       float64
}
