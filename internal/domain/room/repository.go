package room

import "context"

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (Room, error)

	// GetByIDForUpdate loads the room with a row lock so concurrent booking
	// writers against the same room serialize. Only valid inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Room, error)

	ListByCompany(ctx context.Context, companyID string) ([]Room, error)

	// ListVisibleToCompanies returns the companies' own rooms plus rooms
	// other companies have shared with them (public or specific_companies).
	// Callers pass every company the viewer may access.
	ListVisibleToCompanies(ctx context.Context, companyIDs []string) ([]Room, error)

	ExistsByName(ctx context.Context, companyID, name string) (bool, error)
	Create(ctx context.Context, newRoom Room) (Room, error)
	Update(ctx context.Context, id string, req UpdateRoomRequest) error
	CountBookings(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}
