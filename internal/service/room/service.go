package room

import (
	"context"
	"fmt"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

type RoomServiceImpl struct {
	room.RoomRepository
}

func NewRoomService(roomRepository room.RoomRepository) room.RoomService {
	return &RoomServiceImpl{RoomRepository: roomRepository}
}

func toResponse(r room.Room) room.RoomResponse {
	return room.RoomResponse{
		ID:                  r.ID,
		CompanyID:           r.CompanyID,
		Name:                r.Name,
		Description:         r.Description,
		Capacity:            r.Capacity,
		RoomType:            r.RoomType,
		Location:            r.Location,
		Equipment:           r.Equipment,
		Status:              string(r.Status),
		AccessLevel:         string(r.AccessLevel),
		OperatingHoursStart: r.OperatingHoursStart,
		OperatingHoursEnd:   r.OperatingHoursEnd,
		VisibilityType:      string(r.VisibilityType),
		VisibleCompanies:    r.VisibleCompanies,
		IsPublic:            r.VisibilityType == room.VisibilityPublic,
	}
}

// List implements room.RoomService.
func (s *RoomServiceImpl) List(ctx context.Context, actor user.User) ([]room.RoomResponse, error) {
	if actor.CompanyID == nil {
		return nil, user.ErrCompanyIDRequired
	}

	rooms, err := s.ListVisibleToCompanies(ctx, actor.AccessibleCompanies())
	if err != nil {
		return nil, fmt.Errorf("failed to list visible rooms: %w", err)
	}

	responses := make([]room.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// Get implements room.RoomService.
func (s *RoomServiceImpl) Get(ctx context.Context, actor user.User, id string) (room.RoomResponse, error) {
	if actor.CompanyID == nil {
		return room.RoomResponse{}, user.ErrCompanyIDRequired
	}

	r, err := s.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}

	if !r.VisibleToAny(actor.AccessibleCompanies()...) {
		// Rooms outside the actor's view read as absent
		return room.RoomResponse{}, room.ErrRoomNotFound
	}
	return toResponse(r), nil
}

// Create implements room.RoomService. Room management is admin-only.
func (s *RoomServiceImpl) Create(ctx context.Context, actor user.User, req room.CreateRoomRequest) (room.RoomResponse, error) {
	if !user.CanManageRooms(actor) {
		return room.RoomResponse{}, user.ErrAdminPrivilegeRequired
	}
	if actor.CompanyID == nil {
		return room.RoomResponse{}, user.ErrCompanyIDRequired
	}

	exists, err := s.ExistsByName(ctx, *actor.CompanyID, req.Name)
	if err != nil {
		return room.RoomResponse{}, fmt.Errorf("failed to check room name: %w", err)
	}
	if exists {
		return room.RoomResponse{}, room.ErrRoomNameExists
	}

	newRoom := room.Room{
		CompanyID:           *actor.CompanyID,
		Name:                req.Name,
		Description:         req.Description,
		Capacity:            req.Capacity,
		RoomType:            req.RoomType,
		Location:            req.Location,
		Equipment:           req.Equipment,
		Status:              room.StatusAvailable,
		AccessLevel:         room.AccessAll,
		OperatingHoursStart: req.OperatingHoursStart,
		OperatingHoursEnd:   req.OperatingHoursEnd,
		VisibilityType:      room.VisibilityCompany,
		VisibleCompanies:    req.VisibleCompanies,
	}
	if req.Status != "" {
		newRoom.Status = room.Status(req.Status)
	}
	if req.AccessLevel != "" {
		newRoom.AccessLevel = room.AccessLevel(req.AccessLevel)
	}
	if req.VisibilityType != "" {
		newRoom.VisibilityType = room.VisibilityType(req.VisibilityType)
	}

	created, err := s.RoomRepository.Create(ctx, newRoom)
	if err != nil {
		return room.RoomResponse{}, err
	}
	return toResponse(created), nil
}

// Update implements room.RoomService.
func (s *RoomServiceImpl) Update(ctx context.Context, actor user.User, id string, req room.UpdateRoomRequest) (room.RoomResponse, error) {
	if !user.CanManageRooms(actor) {
		return room.RoomResponse{}, user.ErrAdminPrivilegeRequired
	}

	r, err := s.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}
	if !actor.BelongsTo(r.CompanyID) {
		return room.RoomResponse{}, room.ErrRoomNotFound
	}

	if err := s.RoomRepository.Update(ctx, id, req); err != nil {
		return room.RoomResponse{}, err
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return room.RoomResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements room.RoomService. Rooms with bookings cannot be removed.
func (s *RoomServiceImpl) Delete(ctx context.Context, actor user.User, id string) error {
	if !user.CanManageRooms(actor) {
		return user.ErrAdminPrivilegeRequired
	}

	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.BelongsTo(r.CompanyID) {
		return room.ErrRoomNotFound
	}

	bookings, err := s.CountBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count room bookings: %w", err)
	}
	if bookings > 0 {
		return room.ErrRoomHasBookings
	}

	return s.RoomRepository.Delete(ctx, id)
}
