package auth

import "context"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Register creates the company (when its domain is new) and the user;
	// the company's first user becomes admin
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle resolves or links the account for a verified Google
	// identity and opens a session
	LoginWithGoogle(ctx context.Context, googleID, email string) (TokenResponse, error)
}
