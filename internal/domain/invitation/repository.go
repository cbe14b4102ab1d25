package invitation

import "context"

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByCode(ctx context.Context, code string) (Invitation, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// ExistsPendingByEmail checks for a non-expired unused invitation for
	// the email within the company
	ExistsPendingByEmail(ctx context.Context, email, companyID string) (bool, error)

	ListByCompany(ctx context.Context, companyID string) ([]Invitation, error)

	// MarkUsed flips is_used exactly once; returns ErrInvitationAlreadyUsed
	// when the row was already consumed
	MarkUsed(ctx context.Context, id string) error
}
