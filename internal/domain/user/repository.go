package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByCompany(ctx context.Context, companyID string) ([]User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) error
	UpdateRole(ctx context.Context, id string, role Role, expiresAt *time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	GrantExternalAccess(ctx context.Context, id, companyID string, role Role) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)
	CountBookingsByUser(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}
