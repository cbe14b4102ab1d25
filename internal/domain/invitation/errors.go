package invitation

import "errors"

var (
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrInvitationExpired     = errors.New("invitation has expired")
	ErrInvitationAlreadyUsed = errors.New("invitation has already been used")
	ErrEmailAlreadyInvited   = errors.New("email already has a pending invitation in this company")
	ErrUserAlreadyExists     = errors.New("a user with this email already exists")
	ErrRoleNotAllowed        = errors.New("inviter may not grant this role")
)
