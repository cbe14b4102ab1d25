package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/booking"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/calendar"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/boardroom-booker/booker-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type BookingServiceImpl struct {
	db *database.DB
	booking.BookingRepository
	roomRepo        room.RoomRepository
	calendarService calendar.CalendarService
}

func NewBookingService(db *database.DB, bookingRepository booking.BookingRepository, roomRepository room.RoomRepository, calendarService calendar.CalendarService) booking.BookingService {
	return &BookingServiceImpl{
		db:                db,
		BookingRepository: bookingRepository,
		roomRepo:          roomRepository,
		calendarService:   calendarService,
	}
}

// checkRoomAccess applies the room's status, access level and operating
// hours to a proposed slot. Visibility covers the actor's own company and
// an external-access grant.
func checkRoomAccess(r room.Room, actor user.User, start, end time.Time) error {
	if !r.VisibleToAny(actor.AccessibleCompanies()...) {
		return room.ErrRoomNotFound
	}
	if !r.IsBookable() {
		return room.ErrRoomNotBookable
	}

	switch r.AccessLevel {
	case room.AccessManagersOnly:
		if actor.Role != user.RoleAdmin && actor.Role != user.RoleManager {
			return room.ErrRoomAccessDenied
		}
	case room.AccessOwnersOnly:
		if !actor.BelongsTo(r.CompanyID) {
			return room.ErrRoomAccessDenied
		}
	}

	if !r.WithinOperatingHours(start, end) {
		return room.ErrOutsideOperatingHours
	}
	return nil
}

// List implements booking.BookingService.
func (s *BookingServiceImpl) List(ctx context.Context, viewer user.User, filter booking.ListFilter) ([]booking.View, error) {
	if viewer.CompanyID == nil {
		return nil, user.ErrCompanyIDRequired
	}

	bookings, err := s.ListForCompanies(ctx, viewer.AccessibleCompanies(), filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return booking.FilterForViewer(viewer, bookings), nil
}

// Get implements booking.BookingService.
func (s *BookingServiceImpl) Get(ctx context.Context, viewer user.User, id string) (booking.View, error) {
	if viewer.CompanyID == nil {
		return booking.View{}, user.ErrCompanyIDRequired
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return booking.View{}, err
	}

	r, err := s.roomRepo.GetByID(ctx, b.RoomID)
	if err != nil {
		return booking.View{}, err
	}
	if !r.VisibleToAny(viewer.AccessibleCompanies()...) {
		return booking.View{}, booking.ErrBookingNotFound
	}

	return b.ProjectFor(viewer), nil
}

// Create implements booking.BookingService. The room row lock serializes
// concurrent writers, so the overlap check and the insert are atomic.
func (s *BookingServiceImpl) Create(ctx context.Context, actor user.User, req booking.CreateBookingRequest) (booking.View, error) {
	if actor.CompanyID == nil {
		return booking.View{}, user.ErrCompanyIDRequired
	}

	start, end := req.TimeRange()
	visibility := req.ResolveVisibility()

	var created booking.Booking
	var roomName string
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		r, err := s.roomRepo.GetByIDForUpdate(txCtx, req.RoomID)
		if err != nil {
			return err
		}
		if err := checkRoomAccess(r, actor, start, end); err != nil {
			return err
		}
		roomName = r.Name

		existing, found, err := s.FindOverlapping(txCtx, req.RoomID, start, end, nil)
		if err != nil {
			return err
		}
		if found {
			return &booking.ConflictError{Existing: existing}
		}

		created, err = s.BookingRepository.Create(txCtx, booking.Booking{
			Title:          req.Title,
			StartTime:      start,
			EndTime:        end,
			OrganizerName:  actor.Name,
			OrganizerEmail: actor.Email,
			Visibility:     visibility,
			CompanyID:      *actor.CompanyID,
			RoomID:         req.RoomID,
			UserID:         actor.ID,
		})
		return err
	})
	if err != nil {
		return booking.View{}, err
	}

	s.pushToCalendars(ctx, actor.ID, created, roomName)

	return created.ProjectFor(actor), nil
}

// Update implements booking.BookingService. Rescheduling re-runs the
// conflict check under the same room lock as creation.
func (s *BookingServiceImpl) Update(ctx context.Context, actor user.User, id string, req booking.UpdateBookingRequest) (booking.View, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return booking.View{}, err
	}
	if err := s.authorizeWrite(actor, b); err != nil {
		return booking.View{}, err
	}

	start := b.StartTime
	end := b.EndTime
	if req.StartTime != nil {
		start, _ = time.Parse(time.RFC3339, *req.StartTime)
	}
	if req.EndTime != nil {
		end, _ = time.Parse(time.RFC3339, *req.EndTime)
	}
	if !end.After(start) {
		return booking.View{}, booking.ErrInvalidTimeRange
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		r, err := s.roomRepo.GetByIDForUpdate(txCtx, b.RoomID)
		if err != nil {
			return err
		}
		if !r.WithinOperatingHours(start, end) {
			return room.ErrOutsideOperatingHours
		}

		existing, found, err := s.FindOverlapping(txCtx, b.RoomID, start, end, &b.ID)
		if err != nil {
			return err
		}
		if found {
			return &booking.ConflictError{Existing: existing}
		}

		return s.BookingRepository.Update(txCtx, id, req)
	})
	if err != nil {
		return booking.View{}, err
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return booking.View{}, err
	}
	return updated.ProjectFor(actor), nil
}

// Delete implements booking.BookingService.
func (s *BookingServiceImpl) Delete(ctx context.Context, actor user.User, id string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeWrite(actor, b); err != nil {
		return err
	}
	return s.BookingRepository.Delete(ctx, id)
}

// authorizeWrite allows the owner, or an admin of the booking's company
func (s *BookingServiceImpl) authorizeWrite(actor user.User, b booking.Booking) error {
	if b.UserID == actor.ID {
		return nil
	}
	if actor.Role == user.RoleAdmin && actor.BelongsTo(b.CompanyID) {
		return nil
	}
	return booking.ErrNotBookingOwner
}

// pushToCalendars mirrors the booking to the owner's connected calendars.
// Sync failures are logged, never surfaced: the booking already committed.
func (s *BookingServiceImpl) pushToCalendars(ctx context.Context, userID string, b booking.Booking, location string) {
	if s.calendarService == nil {
		return
	}

	event := calendar.Event{
		Title:     b.Title,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Location:  location,
	}
	if err := s.calendarService.PushEvent(ctx, userID, event); err != nil {
		slog.WarnContext(ctx, "calendar sync failed",
			slog.String("booking_id", b.ID),
			slog.Any("err", err),
		)
	}
}
