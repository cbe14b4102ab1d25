package company

import (
	"context"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

// CompanyService defines the interface for company business logic
type CompanyService interface {
	Get(ctx context.Context, actor user.User, id string) (CompanyResponse, error)
	Update(ctx context.Context, actor user.User, id string, req UpdateCompanyRequest) (CompanyResponse, error)

	// Delete removes the company and everything under it
	Delete(ctx context.Context, actor user.User, id string) error
}
