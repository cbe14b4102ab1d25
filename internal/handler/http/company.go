package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/company"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
	userRepo       user.UserRepository
}

func NewCompanyHandler(companyService company.CompanyService, userRepo user.UserRepository) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
		userRepo:       userRepo,
	}
}

// GetMy implements CompanyHandler.
func (h *CompanyHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if actor.CompanyID == nil {
		response.HandleError(w, user.ErrCompanyIDRequired)
		return
	}

	c, err := h.companyService.Get(r.Context(), actor, *actor.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.companyService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if actor.CompanyID == nil {
		response.HandleError(w, user.ErrCompanyIDRequired)
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.companyService.Update(r.Context(), actor, *actor.CompanyID, req)
	if err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company updated successfully", updated)
}

// Delete implements CompanyHandler.
func (h *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if actor.CompanyID == nil {
		response.HandleError(w, user.ErrCompanyIDRequired)
		return
	}

	if err := h.companyService.Delete(r.Context(), actor, *actor.CompanyID); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
