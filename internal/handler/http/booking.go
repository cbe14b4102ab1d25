package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/booking"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BookingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BookingHandlerImpl struct {
	bookingService booking.BookingService
	userRepo       user.UserRepository
}

func NewBookingHandler(bookingService booking.BookingService, userRepo user.UserRepository) BookingHandler {
	return &BookingHandlerImpl{
		bookingService: bookingService,
		userRepo:       userRepo,
	}
}

// listFilterFromQuery reads optional room_id, from and to query parameters
func listFilterFromQuery(r *http.Request) (booking.ListFilter, error) {
	var filter booking.ListFilter

	if roomID := r.URL.Query().Get("room_id"); roomID != "" {
		filter.RoomID = &roomID
	}
	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return booking.ListFilter{}, err
		}
		filter.From = &parsed
	}
	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return booking.ListFilter{}, err
		}
		filter.To = &parsed
	}
	return filter, nil
}

// List implements BookingHandler.
func (h *BookingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter, err := listFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, "from and to must be RFC3339 timestamps", nil)
		return
	}

	views, err := h.bookingService.List(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List bookings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, views)
}

// Get implements BookingHandler.
func (h *BookingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.bookingService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// Create implements BookingHandler.
func (h *BookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create booking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.bookingService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create booking service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Booking created successfully", created)
}

// Update implements BookingHandler.
func (h *BookingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req booking.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update booking decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.bookingService.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update booking service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Booking updated successfully", updated)
}

// Delete implements BookingHandler.
func (h *BookingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.bookingService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete booking service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Booking deleted successfully", nil)
}
