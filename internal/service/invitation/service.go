package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/company"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/invitation"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/jwt"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/token"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/validator"
	"github.com/boardroom-booker/booker-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type InvitationServiceImpl struct {
	db *database.DB
	invitation.InvitationRepository
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	jwtService  jwt.Service
	jwtRepo     postgresql.JWTRepository

	expirationDays      int
	guestExpirationDays int
}

func NewInvitationService(
	db *database.DB,
	invitationRepository invitation.InvitationRepository,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	expirationDays int,
	guestExpirationDays int,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:                   db,
		InvitationRepository: invitationRepository,
		userRepo:             userRepository,
		companyRepo:          companyRepository,
		jwtService:           jwtService,
		jwtRepo:              jwtRepository,
		expirationDays:       expirationDays,
		guestExpirationDays:  guestExpirationDays,
	}
}

func toResponse(inv invitation.Invitation, now time.Time) invitation.InvitationResponse {
	return invitation.InvitationResponse{
		ID:        inv.ID,
		Code:      inv.Code,
		Email:     inv.Email,
		Name:      inv.Name,
		Role:      string(inv.Role),
		CompanyID: inv.CompanyID,
		External:  inv.External,
		Status:    string(inv.Classify(now)),
		ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements invitation.InvitationService. The grantable roles follow
// the same policy as direct role assignment: managers may only invite
// employees and guests.
func (s *InvitationServiceImpl) Create(ctx context.Context, inviter user.User, req invitation.CreateRequest) (invitation.InvitationResponse, error) {
	if !user.CanInviteUsers(inviter) {
		return invitation.InvitationResponse{}, user.ErrManagerAccessRequired
	}
	if inviter.CompanyID == nil {
		return invitation.InvitationResponse{}, user.ErrCompanyIDRequired
	}

	role, ok := user.ParseRole(req.Role)
	if !ok {
		return invitation.InvitationResponse{}, user.ErrInvalidRole
	}
	if !user.CanAssignRole(inviter, role) {
		return invitation.InvitationResponse{}, invitation.ErrRoleNotAllowed
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if req.External {
		// External invitations extend an existing account from another company
		if !exists {
			return invitation.InvitationResponse{}, user.ErrUserNotFound
		}
	} else if exists {
		return invitation.InvitationResponse{}, invitation.ErrUserAlreadyExists
	}

	pending, err := s.ExistsPendingByEmail(ctx, req.Email, *inviter.CompanyID)
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to check pending invitation: %w", err)
	}
	if pending {
		return invitation.InvitationResponse{}, invitation.ErrEmailAlreadyInvited
	}

	code, err := token.GenerateUnique(ctx, s.ExistsByCode)
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to generate invitation code: %w", err)
	}

	now := time.Now()
	inv := invitation.Invitation{
		Code:        code,
		Email:       req.Email,
		Name:        req.Name,
		Role:        role,
		CompanyID:   *inviter.CompanyID,
		InvitedByID: inviter.ID,
		External:    req.External,
		ExpiresAt:   now.AddDate(0, 0, s.expirationDays),
	}
	if role == user.RoleGuest {
		days := s.guestExpirationDays
		if req.GuestDurationDays != nil {
			days = *req.GuestDurationDays
		}
		inv.GuestDurationDays = &days
	}

	created, err := s.InvitationRepository.Create(ctx, inv)
	if err != nil {
		return invitation.InvitationResponse{}, err
	}
	return toResponse(created, now), nil
}

// Validate implements invitation.InvitationService. It never consumes the
// code; expired and used invitations still report their state.
func (s *InvitationServiceImpl) Validate(ctx context.Context, code string) (invitation.ValidateResponse, error) {
	inv, err := s.GetByCode(ctx, code)
	if err != nil {
		return invitation.ValidateResponse{}, err
	}

	companyData, err := s.companyRepo.GetByID(ctx, inv.CompanyID)
	if err != nil {
		return invitation.ValidateResponse{}, fmt.Errorf("failed to get inviting company: %w", err)
	}

	return invitation.ValidateResponse{
		Code:        inv.Code,
		Email:       inv.Email,
		Name:        inv.Name,
		Role:        string(inv.Role),
		CompanyName: companyData.Name,
		Status:      string(inv.Classify(time.Now())),
		ExpiresAt:   inv.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Accept implements invitation.InvitationService. Consumption, account
// creation and session issuance commit together; a code accepted twice
// concurrently fails on the second MarkUsed.
func (s *InvitationServiceImpl) Accept(ctx context.Context, req invitation.AcceptRequest) (invitation.AcceptResponse, error) {
	inv, err := s.GetByCode(ctx, req.Code)
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	now := time.Now()
	switch inv.Classify(now) {
	case invitation.StatusUsed:
		return invitation.AcceptResponse{}, invitation.ErrInvitationAlreadyUsed
	case invitation.StatusExpired:
		return invitation.AcceptResponse{}, invitation.ErrInvitationExpired
	}

	// External acceptance reuses an existing account and ignores the password
	var passwordHash []byte
	if !inv.External {
		if len(req.Password) < 8 {
			return invitation.AcceptResponse{}, validator.ValidationErrors{{
				Field:   "password",
				Message: "password must be at least 8 characters",
			}}
		}
		passwordHash, err = bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return invitation.AcceptResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	var response invitation.AcceptResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		// MarkUsed first so a concurrent accept of the same code fails here
		if err := s.MarkUsed(txCtx, inv.ID); err != nil {
			return err
		}

		var account user.User
		if inv.External {
			account, err = s.userRepo.GetByEmail(txCtx, inv.Email)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					return invitation.ErrInvitationNotFound
				}
				return err
			}
			if err := s.userRepo.GrantExternalAccess(txCtx, account.ID, inv.CompanyID, account.Role); err != nil {
				return err
			}
		} else {
			hashed := string(passwordHash)
			newUser := user.User{
				CompanyID:    &inv.CompanyID,
				Email:        inv.Email,
				Name:         inv.Name,
				PasswordHash: &hashed,
				Role:         inv.Role,
			}
			if inv.Role == user.RoleGuest {
				days := s.guestExpirationDays
				if inv.GuestDurationDays != nil {
					days = *inv.GuestDurationDays
				}
				deadline := now.AddDate(0, 0, days)
				newUser.ExpiresAt = &deadline
			}

			account, err = s.userRepo.Create(txCtx, newUser)
			if err != nil {
				return err
			}
		}

		response.UserID = account.ID
		response.CompanyID = inv.CompanyID
		response.Role = string(account.Role)

		response.AccessToken, response.AccessTokenExpiresIn, err = s.jwtService.GenerateAccessToken(account.ID, account.Email, account.CompanyID, account.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		response.RefreshToken, response.RefreshTokenExpiresIn, err = s.jwtService.GenerateRefreshToken(account.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}
		if err := s.jwtRepo.CreateRefreshToken(txCtx, account.ID, response.RefreshToken, response.RefreshTokenExpiresIn); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	return response, nil
}

// ListByCompany implements invitation.InvitationService.
func (s *InvitationServiceImpl) ListByCompany(ctx context.Context, actor user.User) ([]invitation.InvitationResponse, error) {
	if !user.CanInviteUsers(actor) {
		return nil, user.ErrManagerAccessRequired
	}
	if actor.CompanyID == nil {
		return nil, user.ErrCompanyIDRequired
	}

	invitations, err := s.InvitationRepository.ListByCompany(ctx, *actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	now := time.Now()
	responses := make([]invitation.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		responses = append(responses, toResponse(inv, now))
	}
	return responses, nil
}
