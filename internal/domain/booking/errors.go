package booking

import (
	"errors"
	"time"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking overlaps an existing booking in this room")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrTitleRequired     = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title must be at most 120 characters")
	ErrNotBookingOwner   = errors.New("only the booking owner or an admin may modify it")
	ErrInvalidVisibility = errors.New("invalid booking visibility")
)

// ConflictError carries the blocking booking so the caller can report which
// slot is taken. It unwraps to ErrBookingConflict.
type ConflictError struct {
	Existing Booking
}

func (e *ConflictError) Error() string {
	return ErrBookingConflict.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}

// Detail projects the conflicting slot for an error response
func (e *ConflictError) Detail() ConflictDetail {
	return ConflictDetail{
		BookingID: e.Existing.ID,
		StartTime: e.Existing.StartTime.Format(time.RFC3339),
		EndTime:   e.Existing.EndTime.Format(time.RFC3339),
	}
}
