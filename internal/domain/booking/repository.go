package booking

import (
	"context"
	"time"
)

// ListFilter narrows a booking feed query
type ListFilter struct {
	RoomID *string
	From   *time.Time
	To     *time.Time
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (Booking, error)

	// ListForCompanies returns the feed of bookings in rooms visible to any
	// of the given companies. Callers pass every company the viewer may
	// access, including an external-access grant.
	ListForCompanies(ctx context.Context, companyIDs []string, filter ListFilter) ([]Booking, error)

	// FindOverlapping returns the first booking in the room whose half-open
	// interval overlaps [start, end), skipping excludeID when non-nil.
	// Runs inside the caller's transaction during create/update.
	FindOverlapping(ctx context.Context, roomID string, start, end time.Time, excludeID *string) (Booking, bool, error)

	Create(ctx context.Context, b Booking) (Booking, error)
	Update(ctx context.Context, id string, req UpdateBookingRequest) error
	CountByRoom(ctx context.Context, roomID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
