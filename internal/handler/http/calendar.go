package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/calendar"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CalendarHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService calendar.CalendarService
	userRepo        user.UserRepository
}

func NewCalendarHandler(calendarService calendar.CalendarService, userRepo user.UserRepository) CalendarHandler {
	return &CalendarHandlerImpl{
		calendarService: calendarService,
		userRepo:        userRepo,
	}
}

// Connect implements CalendarHandler. Redirects to the provider's consent
// page with the state pinned in a cookie.
func (h *CalendarHandlerImpl) Connect(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	provider, ok := calendar.ParseProvider(chi.URLParam(r, "provider"))
	if !ok {
		response.HandleError(w, calendar.ErrUnsupportedProvider)
		return
	}

	url, state, err := h.calendarService.ConnectURL(r.Context(), actor.ID, provider, r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cookie := &http.Cookie{
		Name:     "calendar_state",
		Value:    state,
		Path:     "/api/v1/calendar",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback implements CalendarHandler.
func (h *CalendarHandlerImpl) Callback(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	provider, ok := calendar.ParseProvider(chi.URLParam(r, "provider"))
	if !ok {
		response.HandleError(w, calendar.ErrUnsupportedProvider)
		return
	}

	stateCookie, err := r.Cookie("calendar_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.HandleError(w, calendar.ErrInvalidOAuthState)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is missing", nil)
		return
	}

	conn, err := h.calendarService.HandleCallback(r.Context(), actor.ID, provider, code)
	if err != nil {
		slog.Error("Calendar callback service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar connected successfully", calendar.ConnectionResponse{
		Provider:    string(conn.Provider),
		ConnectedAt: conn.CreatedAt.Format(time.RFC3339),
	})
}

// List implements CalendarHandler.
func (h *CalendarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	conns, err := h.calendarService.ListConnections(r.Context(), actor.ID)
	if err != nil {
		slog.Error("List calendar connections service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, conns)
}

// Disconnect implements CalendarHandler.
func (h *CalendarHandlerImpl) Disconnect(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	provider, ok := calendar.ParseProvider(chi.URLParam(r, "provider"))
	if !ok {
		response.HandleError(w, calendar.ErrUnsupportedProvider)
		return
	}

	if err := h.calendarService.Disconnect(r.Context(), actor.ID, provider); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Calendar disconnected successfully", nil)
}
