package user

import "context"

// UserService defines the interface for account business logic
type UserService interface {
	// List returns the accounts the actor may see under the role policy
	List(ctx context.Context, actor User) ([]UserResponse, error)

	Get(ctx context.Context, actor User, targetID string) (UserResponse, error)
	GetProfile(ctx context.Context, actorID string) (UserResponse, error)
	Update(ctx context.Context, actor User, targetID string, req UpdateUserRequest) (UserResponse, error)

	// UpdateRole changes the target's role; the new role is checked against
	// the actor's authority, not the target's current role
	UpdateRole(ctx context.Context, actor User, targetID string, req UpdateRoleRequest) (UserResponse, error)

	Delete(ctx context.Context, actor User, targetID string) error
}
