package booking

import "time"

// Visibility controls how much of a booking other viewers see.
// The legacy is_public boolean is derived: visibility != private.
type Visibility string

const (
	VisibilityAllCompanies Visibility = "all_companies"
	VisibilityOwnerCompany Visibility = "owner_company"
	VisibilityPrivate      Visibility = "private"
)

// ParseVisibility converts a string to a Visibility, rejecting unknown values
func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(s) {
	case VisibilityAllCompanies, VisibilityOwnerCompany, VisibilityPrivate:
		return Visibility(s), true
	}
	return "", false
}

// MaxTitleLength caps booking titles
const MaxTitleLength = 120

type Booking struct {
	ID             string
	Title          string
	StartTime      time.Time
	EndTime        time.Time
	OrganizerName  string
	OrganizerEmail string
	Visibility     Visibility
	CompanyID      string
	RoomID         string
	UserID         string
	CreatedAt      time.Time
}

// IsPublic is the legacy alias for non-private visibility
func (b *Booking) IsPublic() bool {
	return b.Visibility != VisibilityPrivate
}

// Overlaps implements half-open interval overlap: [aStart, aEnd) and
// [bStart, bEnd) conflict iff aStart < bEnd && aEnd > bStart. A booking
// ending exactly when another starts does not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ConflictsWith reports whether two bookings collide in the same room
func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.RoomID != other.RoomID {
		return false
	}
	return Overlaps(b.StartTime, b.EndTime, other.StartTime, other.EndTime)
}
