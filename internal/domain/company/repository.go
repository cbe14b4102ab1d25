package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByDomain(ctx context.Context, domain string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByDomain(ctx context.Context, domain string) (bool, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error

	// Delete removes the company together with its users, rooms, bookings
	// and invitations. Callers run it inside a transaction.
	Delete(ctx context.Context, id string) error
}
