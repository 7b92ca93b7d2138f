package commands

import "slotly/internal/pkg/errs"

// Sentinel errors for the write side. Handlers map these to HTTP statuses
// with errors.Is; the transient provider errors are the only ones a caller
// should retry.
var (
	ErrHostNotFound          = errs.New("host not found")
	ErrEventTypeNotFound     = errs.New("event type not found")
	ErrEventTypeInactive     = errs.New("event type is inactive")
	ErrAvailabilityNotFound  = errs.New("availability rules not found")
	ErrProviderNotLinked     = errs.New("host has no linked calendar")
	ErrSlotNoLongerAvailable = errs.New("slot is no longer available")
	ErrReservationFailed     = errs.New("provider rejected event creation")
	ErrProviderUnavailable   = errs.New("calendar provider unavailable")
	ErrProviderTimeout       = errs.New("calendar provider timed out")
	ErrInvalidBookingRequest = errs.New("invalid booking request")
	ErrInvalidAvailability   = errs.New("invalid availability rules")
	ErrInvalidEventType      = errs.New("invalid event type")
	ErrDuplicateEventTypeURL = errs.New("event type url already in use")
)
