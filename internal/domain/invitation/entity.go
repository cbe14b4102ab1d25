package invitation

import (
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// Status classifies an invitation at a point in time. Only "used" is stored;
// expiry is derived from expires_at when the code is checked.
type Status string

const (
	StatusPending Status = "pending"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

type Invitation struct {
	ID                string
	Code              string // 8 uppercase alphanumerics, unique and immutable
	Email             string
	Name              string
	Role              user.Role
	CompanyID         string
	InvitedByID       string
	GuestDurationDays *int // only meaningful when Role == guest
	External          bool // grants external_company_access to an existing user
	IsUsed            bool
	ExpiresAt         time.Time
	CreatedAt         time.Time
}

// IsExpired checks expiry at the given time
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Classify returns the lifecycle state at the given time. Expiry takes
// precedence: a code past its expires_at reports expired even when it was
// already consumed.
func (i *Invitation) Classify(now time.Time) Status {
	if i.IsExpired(now) {
		return StatusExpired
	}
	if i.IsUsed {
		return StatusUsed
	}
	return StatusPending
}

// CanBeAccepted reports whether acceptance is still possible
func (i *Invitation) CanBeAccepted(now time.Time) bool {
	return i.Classify(now) == StatusPending
}
