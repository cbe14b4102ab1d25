package user

import (
	"context"
	"fmt"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
	guestExpirationDays int
}

func NewUserService(userRepository user.UserRepository, guestExpirationDays int) user.UserService {
	return &UserServiceImpl{
		UserRepository:      userRepository,
		guestExpirationDays: guestExpirationDays,
	}
}

func toResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive(time.Now()),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.ExpiresAt != nil {
		formatted := u.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &formatted
	}
	return resp
}

// List implements user.UserService. The feed is policy-filtered: managers
// get employees and guests only, never peers or admins.
func (s *UserServiceImpl) List(ctx context.Context, actor user.User) ([]user.UserResponse, error) {
	if !user.CanManageUsers(actor) {
		return nil, user.ErrManagerAccessRequired
	}
	if actor.CompanyID == nil {
		return nil, user.ErrCompanyIDRequired
	}

	users, err := s.ListByCompany(ctx, *actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		if u.ID == actor.ID || user.CanSeeUser(actor, u) {
			responses = append(responses, toResponse(u))
		}
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, actor user.User, targetID string) (user.UserResponse, error) {
	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if target.ID != actor.ID && !user.CanSeeUser(actor, target) {
		// Hidden accounts read as absent, not forbidden
		return user.UserResponse{}, user.ErrUserNotFound
	}
	return toResponse(target), nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, actorID string) (user.UserResponse, error) {
	u, err := s.GetByID(ctx, actorID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, actor user.User, targetID string, req user.UpdateUserRequest) (user.UserResponse, error) {
	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if target.ID != actor.ID {
		if !user.CanSeeUser(actor, target) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		if !user.CanEditUser(actor, target) {
			return user.UserResponse{}, user.ErrInsufficientPermissions
		}
	}

	if err := s.UserRepository.Update(ctx, targetID, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(updated), nil
}

// UpdateRole implements user.UserService. The policy check runs against the
// role being assigned, so a manager cannot promote anyone to manager or
// admin even for targets it may edit.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, actor user.User, targetID string, req user.UpdateRoleRequest) (user.UserResponse, error) {
	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !user.CanSeeUser(actor, target) {
		return user.UserResponse{}, user.ErrUserNotFound
	}
	if !user.CanEditUser(actor, target) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	newRole, ok := user.ParseRole(req.Role)
	if !ok {
		return user.UserResponse{}, user.ErrInvalidRole
	}
	if !user.CanAssignRole(actor, newRole) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}

	var expiresAt *time.Time
	if newRole == user.RoleGuest {
		if req.ExpiresAt != nil {
			parsed, err := time.Parse(time.RFC3339, *req.ExpiresAt)
			if err != nil {
				return user.UserResponse{}, fmt.Errorf("failed to parse expires_at: %w", err)
			}
			expiresAt = &parsed
		} else if target.ExpiresAt != nil {
			expiresAt = target.ExpiresAt
		} else {
			deadline := time.Now().AddDate(0, 0, s.guestExpirationDays)
			expiresAt = &deadline
		}
	}

	if err := s.UserRepository.UpdateRole(ctx, targetID, newRole, expiresAt); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.GetByID(ctx, targetID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, actor user.User, targetID string) error {
	if targetID == actor.ID {
		return user.ErrCannotDeleteSelf
	}

	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if !user.CanSeeUser(actor, target) {
		return user.ErrUserNotFound
	}
	if !user.CanEditUser(actor, target) {
		return user.ErrInsufficientPermissions
	}

	bookings, err := s.CountBookingsByUser(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to count user bookings: %w", err)
	}
	if bookings > 0 {
		return user.ErrUserHasBookings
	}

	return s.UserRepository.Delete(ctx, targetID)
}
