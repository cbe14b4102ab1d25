package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/invitation"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/response"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
	jwtService        jwt.Service
	userRepo          user.UserRepository
}

func NewInvitationHandler(invitationService invitation.InvitationService, jwtService jwt.Service, userRepo user.UserRepository) InvitationHandler {
	return &InvitationHandlerImpl{
		invitationService: invitationService,
		jwtService:        jwtService,
		userRepo:          userRepo,
	}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	inviter, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req invitation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.invitationService.Create(r.Context(), inviter, req)
	if err != nil {
		slog.Error("Create invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Invitation created successfully", created)
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	invitations, err := h.invitationService.ListByCompany(r.Context(), actor)
	if err != nil {
		slog.Error("List invitations service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, invitations)
}

// Validate implements InvitationHandler. Public: invitees check their code
// before they have an account.
func (h *InvitationHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result, err := h.invitationService.Validate(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Accept implements InvitationHandler. Public: acceptance creates the
// account and opens the first session.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	var req invitation.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Accept invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Code = chi.URLParam(r, "code")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.invitationService.Accept(r.Context(), req)
	if err != nil {
		slog.Error("Accept invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	response.Created(w, "Invitation accepted successfully", result)
}
