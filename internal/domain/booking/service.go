package booking

import (
	"context"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// BookingService defines the interface for booking business logic
type BookingService interface {
	// List returns the viewer-scoped feed; hidden bookings come back
	// redacted, not omitted
	List(ctx context.Context, viewer user.User, filter ListFilter) ([]View, error)

	Get(ctx context.Context, viewer user.User, id string) (View, error)

	// Create checks room access, operating hours and overlap before writing.
	// The conflict check and the insert run in one transaction under a room
	// row lock.
	Create(ctx context.Context, actor user.User, req CreateBookingRequest) (View, error)

	Update(ctx context.Context, actor user.User, id string, req UpdateBookingRequest) (View, error)
	Delete(ctx context.Context, actor user.User, id string) error
}
