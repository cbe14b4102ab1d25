package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RoomHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RoomHandlerImpl struct {
	roomService room.RoomService
	userRepo    user.UserRepository
}

func NewRoomHandler(roomService room.RoomService, userRepo user.UserRepository) RoomHandler {
	return &RoomHandlerImpl{
		roomService: roomService,
		userRepo:    userRepo,
	}
}

// List implements RoomHandler.
func (h *RoomHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rooms, err := h.roomService.List(r.Context(), actor)
	if err != nil {
		slog.Error("List rooms service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rooms)
}

// Get implements RoomHandler.
func (h *RoomHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rm, err := h.roomService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rm)
}

// Create implements RoomHandler.
func (h *RoomHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req room.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create room decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.roomService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create room service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Room created successfully", created)
}

// Update implements RoomHandler.
func (h *RoomHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req room.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update room decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.roomService.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update room service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Room updated successfully", updated)
}

// Delete implements RoomHandler.
func (h *RoomHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := currentUser(r, h.userRepo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.roomService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete room service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Room deleted successfully", nil)
}
