package invitation

import (
	"context"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	// Create generates a unique code for the invitee, subject to the
	// inviter's role policy
	Create(ctx context.Context, inviter user.User, req CreateRequest) (InvitationResponse, error)

	// Validate is the read-only pre-registration check for a code
	Validate(ctx context.Context, code string) (ValidateResponse, error)

	// Accept consumes the code once, creating the account (or granting
	// external access) and opening a session, atomically
	Accept(ctx context.Context, req AcceptRequest) (AcceptResponse, error)

	// ListByCompany lists the company's invitations for admins/managers
	ListByCompany(ctx context.Context, actor user.User) ([]InvitationResponse, error)
}
