package company

import (
	"context"
	"fmt"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/company"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/boardroom-booker/booker-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:                db,
		CompanyRepository: companyRepository,
	}
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Domain:    c.Domain,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// Get implements company.CompanyService. External-access grants allow
// reading the second company's record too.
func (s *CompanyServiceImpl) Get(ctx context.Context, actor user.User, id string) (company.CompanyResponse, error) {
	if !actor.CanAccessCompany(id) {
		return company.CompanyResponse{}, company.ErrCompanyNotFound
	}

	c, err := s.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toResponse(c), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, actor user.User, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if !actor.BelongsTo(id) {
		return company.CompanyResponse{}, company.ErrCompanyNotFound
	}
	if !user.CanManageCompany(actor) {
		return company.CompanyResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := s.CompanyRepository.Update(ctx, id, req); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements company.CompanyService. The cascade removes users,
// rooms, bookings and invitations with the company.
func (s *CompanyServiceImpl) Delete(ctx context.Context, actor user.User, id string) error {
	if !actor.BelongsTo(id) {
		return company.ErrCompanyNotFound
	}
	if !user.CanManageCompany(actor) {
		return user.ErrAdminPrivilegeRequired
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)
		if err := s.CompanyRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}
		return nil
	})
	return err
}
