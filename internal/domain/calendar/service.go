package calendar

import "context"

// ConnectionResponse is the outward projection of a calendar connection
type ConnectionResponse struct {
	Provider    string `json:"provider"`
	ConnectedAt string `json:"connected_at"`
}

// CalendarService defines the interface for external calendar integration
type CalendarService interface {
	// ConnectURL starts the OAuth consent flow for a provider
	ConnectURL(ctx context.Context, userID string, provider Provider, userAgent string) (url string, state string, err error)

	// HandleCallback exchanges the authorization code and stores the grant
	HandleCallback(ctx context.Context, userID string, provider Provider, code string) (Connection, error)

	ListConnections(ctx context.Context, userID string) ([]ConnectionResponse, error)
	Disconnect(ctx context.Context, userID string, provider Provider) error

	// PushEvent mirrors a booking to every calendar the user connected.
	// Sync failures never fail the booking write.
	PushEvent(ctx context.Context, userID string, event Event) error
}
