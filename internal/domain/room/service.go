package room

import (
	"context"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// RoomService defines the interface for room business logic
type RoomService interface {
	// List returns the rooms visible to the actor's company, shared rooms
	// included
	List(ctx context.Context, actor user.User) ([]RoomResponse, error)

	Get(ctx context.Context, actor user.User, id string) (RoomResponse, error)
	Create(ctx context.Context, actor user.User, req CreateRoomRequest) (RoomResponse, error)
	Update(ctx context.Context, actor user.User, id string, req UpdateRoomRequest) (RoomResponse, error)

	// Delete refuses while bookings reference the room
	Delete(ctx context.Context, actor user.User, id string) error
}
