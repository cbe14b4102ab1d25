package response

import (
	"errors"
	"net/http"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/auth"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/booking"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/calendar"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/company"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/invitation"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Booking conflicts carry the blocking slot
	var conflictErr *booking.ConflictError
	if errors.As(err, &conflictErr) {
		ConflictWithContext(w, "Booking overlaps an existing booking in this room", conflictErr.Detail())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountExpired):
		Forbidden(w, "Guest account has expired")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAccountExpired):
		Forbidden(w, "Guest account has expired")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrUserHasBookings):
		Conflict(w, "User still owns bookings")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "Account is not attached to a company")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyDomainExists):
		Conflict(w, "Company domain already registered")
	case errors.Is(err, company.ErrDomainMismatch):
		BadRequest(w, "Email domain must match company domain", nil)

	// Room domain errors
	case errors.Is(err, room.ErrRoomNotFound):
		NotFound(w, "Room not found")
	case errors.Is(err, room.ErrRoomNameExists):
		Conflict(w, "Room name already exists in this company")
	case errors.Is(err, room.ErrRoomNotBookable):
		Conflict(w, "Room is not available for booking")
	case errors.Is(err, room.ErrRoomAccessDenied):
		Forbidden(w, "Room access level does not permit this user")
	case errors.Is(err, room.ErrRoomNotVisible):
		NotFound(w, "Room not found")
	case errors.Is(err, room.ErrRoomHasBookings):
		Conflict(w, "Room still has bookings")
	case errors.Is(err, room.ErrOutsideOperatingHours):
		BadRequest(w, "Booking is outside the room's operating hours", nil)

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrBookingConflict):
		Conflict(w, "Booking overlaps an existing booking in this room")
	case errors.Is(err, booking.ErrInvalidTimeRange):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, booking.ErrNotBookingOwner):
		Forbidden(w, "Only the booking owner or an admin may modify it")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrInvitationAlreadyUsed):
		Conflict(w, "Invitation has already been used")
	case errors.Is(err, invitation.ErrEmailAlreadyInvited):
		Conflict(w, "Email already has a pending invitation in this company")
	case errors.Is(err, invitation.ErrUserAlreadyExists):
		Conflict(w, "A user with this email already exists")
	case errors.Is(err, invitation.ErrRoleNotAllowed):
		Forbidden(w, "Inviter may not grant this role")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrConnectionNotFound):
		NotFound(w, "Calendar connection not found")
	case errors.Is(err, calendar.ErrProviderNotEnabled):
		BadRequest(w, "Calendar provider is not configured", nil)
	case errors.Is(err, calendar.ErrInvalidOAuthState):
		BadRequest(w, "OAuth state does not match", nil)
	case errors.Is(err, calendar.ErrUnsupportedProvider):
		BadRequest(w, "Unsupported calendar provider", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
