package calendar

import (
	"time"

	"golang.org/x/oauth2"
)

// Provider identifies an external calendar vendor
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

// ParseProvider converts a string to a Provider, rejecting unknown values
func ParseProvider(s string) (Provider, bool) {
	switch Provider(s) {
	case ProviderGoogle, ProviderMicrosoft:
		return Provider(s), true
	}
	return "", false
}

// Connection stores a user's OAuth grant for one provider
type Connection struct {
	ID        string
	UserID    string
	Provider  Provider
	Token     oauth2.Token
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is the provider-neutral projection of a booking pushed to an
// external calendar
type Event struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Location  string
}
