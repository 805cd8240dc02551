package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNotEnoughTickets      = errors.New("not enough tickets available")
	ErrAlreadyBooked         = errors.New("user already has an active booking for this event")
	ErrAlreadyCancelled      = errors.New("booking is already cancelled")
	ErrPastEvent             = errors.New("event has already started")
	ErrEventHasBookings      = errors.New("event has active bookings")
	ErrCapacityBelowReserved = errors.New("capacity cannot drop below reserved tickets")
)

// ErrContention is transient: a per-event lock could not be acquired within
// the bounded wait. Callers may retry.
var ErrContention = errors.New("event is busy, try again")

var (
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
