package calendar

import "context"

type ConnectionRepository interface {
	// Upsert stores or refreshes the user's grant for the provider
	Upsert(ctx context.Context, conn Connection) (Connection, error)
	GetByUserAndProvider(ctx context.Context, userID string, provider Provider) (Connection, error)
	ListByUser(ctx context.Context, userID string) ([]Connection, error)
	Delete(ctx context.Context, userID string, provider Provider) error
}
