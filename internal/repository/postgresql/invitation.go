package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/invitation"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invitationColumns = `id, code, email, name, role, company_id, invited_by_id,
		guest_duration_days, external, is_used, expires_at, created_at`

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.Code, &inv.Email, &inv.Name, &inv.Role, &inv.CompanyID,
		&inv.InvitedByID, &inv.GuestDurationDays, &inv.External, &inv.IsUsed,
		&inv.ExpiresAt, &inv.CreatedAt,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO invitations (code, email, name, role, company_id, invited_by_id,
			guest_duration_days, external, is_used, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)
		RETURNING %s
	`, invitationColumns)

	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.Code, strings.ToLower(inv.Email), inv.Name, inv.Role, inv.CompanyID,
		inv.InvitedByID, inv.GuestDurationDays, inv.External, inv.ExpiresAt,
	))
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	return created, nil
}

// GetByCode implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByCode(ctx context.Context, code string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM invitations WHERE code = $1`, invitationColumns)

	inv, err := scanInvitation(q.QueryRow(ctx, query, strings.ToUpper(code)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by code: %w", err)
	}
	return inv, nil
}

// ExistsByCode implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM invitations WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check invitation code: %w", err)
	}
	return exists, nil
}

// ExistsPendingByEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExistsPendingByEmail(ctx context.Context, email, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE email = $1 AND company_id = $2 AND is_used = false AND expires_at > NOW()
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, strings.ToLower(email), companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}
	return exists, nil
}

// ListByCompany implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM invitations
		WHERE company_id = $1
		ORDER BY created_at DESC
	`, invitationColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return invitations, nil
}

// MarkUsed implements invitation.InvitationRepository. The is_used guard in
// the WHERE clause makes consumption one-shot even under concurrent accepts.
func (r *invitationRepositoryImpl) MarkUsed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET is_used = true
		WHERE id = $1 AND is_used = false
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.ErrInvitationAlreadyUsed
		}
		return fmt.Errorf("failed to mark invitation as used: %w", err)
	}
	return nil
}
