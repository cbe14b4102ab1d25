package invitation

import (
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"
)

// CreateRequest creates an invitation on behalf of the acting user
type CreateRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	GuestDurationDays *int   `json:"guest_duration_days,omitempty"`
	External          bool   `json:"external,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if _, ok := user.ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee, guest",
		})
	}

	if r.GuestDurationDays != nil && *r.GuestDurationDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "guest_duration_days",
			Message: "guest_duration_days must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcceptRequest consumes an invitation code
type AcceptRequest struct {
	Code     string `json:"-"` // from URL param
	Password string `json:"password"`
}

// Validate checks the code only. The password requirement depends on the
// invitation: external acceptance reuses an existing account, so the
// password check happens once the invitation is loaded.
func (r *AcceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InvitationResponse is the outward projection of an invitation
type InvitationResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	External  bool   `json:"external"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

// ValidateResponse is the read-only pre-registration check
type ValidateResponse struct {
	Code        string `json:"code"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
}

// AcceptResponse reports the account created by acceptance
type AcceptResponse struct {
	UserID                string `json:"user_id"`
	CompanyID             string `json:"company_id"`
	Role                  string `json:"role"`
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}
