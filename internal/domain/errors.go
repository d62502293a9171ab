package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTicketNotFound       = errors.New("ticket not found")
)

var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrInvalidTransition = errors.New("registration status does not allow this transition")
	ErrSlugTaken         = errors.New("an event with this slug already exists")
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("moderator role required")
)

var (
	ErrValidation = errors.New("validation error")
)
