package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/booking"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, title, start_time, end_time, organizer_name, organizer_email,
		visibility, company_id, room_id, user_id, created_at`

type bookingRepositoryImpl struct {
	db *database.DB
}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository(db *database.DB) booking.BookingRepository {
	return &bookingRepositoryImpl{db: db}
}

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.Title, &b.StartTime, &b.EndTime, &b.OrganizerName, &b.OrganizerEmail,
		&b.Visibility, &b.CompanyID, &b.RoomID, &b.UserID, &b.CreatedAt,
	)
	return b, err
}

// GetByID implements booking.BookingRepository.
func (r *bookingRepositoryImpl) GetByID(ctx context.Context, id string) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	b, err := scanBooking(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.Booking{}, booking.ErrBookingNotFound
		}
		return booking.Booking{}, fmt.Errorf("failed to get booking by id: %w", err)
	}
	return b, nil
}

// ListForCompanies implements booking.BookingRepository. The feed covers
// bookings in rooms any of the companies can see, not just their own
// bookings. External-access viewers pass both their companies.
func (r *bookingRepositoryImpl) ListForCompanies(ctx context.Context, companyIDs []string, filter booking.ListFilter) ([]booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE room_id IN (
			SELECT id FROM rooms
			WHERE company_id = ANY($1::uuid[])
			   OR visibility_type = 'public'
			   OR (visibility_type = 'specific_companies' AND visible_companies && $1::uuid[])
		)
		  AND ($2::uuid IS NULL OR room_id = $2)
		  AND ($3::timestamptz IS NULL OR end_time > $3)
		  AND ($4::timestamptz IS NULL OR start_time < $4)
		ORDER BY start_time
	`, bookingColumns)

	rows, err := q.Query(ctx, query, companyIDs, filter.RoomID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return bookings, nil
}

// FindOverlapping implements booking.BookingRepository. Half-open interval
// semantics: a booking ending exactly at start does not overlap.
func (r *bookingRepositoryImpl) FindOverlapping(ctx context.Context, roomID string, start, end time.Time, excludeID *string) (booking.Booking, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE room_id = $1
		  AND start_time < $3
		  AND end_time > $2
		  AND ($4::uuid IS NULL OR id != $4)
		ORDER BY start_time
		LIMIT 1
	`, bookingColumns)

	b, err := scanBooking(q.QueryRow(ctx, query, roomID, start, end, excludeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.Booking{}, false, nil
		}
		return booking.Booking{}, false, fmt.Errorf("failed to find overlapping booking: %w", err)
	}
	return b, true, nil
}

// Create implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO bookings (title, start_time, end_time, organizer_name, organizer_email,
			visibility, company_id, room_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, bookingColumns)

	created, err := scanBooking(q.QueryRow(ctx, query,
		b.Title, b.StartTime, b.EndTime, b.OrganizerName, b.OrganizerEmail,
		b.Visibility, b.CompanyID, b.RoomID, b.UserID,
	))
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

// Update implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Update(ctx context.Context, id string, req booking.UpdateBookingRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bookings
		SET title = COALESCE($1, title),
			start_time = COALESCE($2::timestamptz, start_time),
			end_time = COALESCE($3::timestamptz, end_time),
			visibility = COALESCE($4, visibility)
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.Title, req.StartTime, req.EndTime, req.Visibility, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.ErrBookingNotFound
		}
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// CountByRoom implements booking.BookingRepository.
func (r *bookingRepositoryImpl) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by room: %w", err)
	}
	return count, nil
}

// CountByUser implements booking.BookingRepository.
func (r *bookingRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by user: %w", err)
	}
	return count, nil
}

// Delete implements booking.BookingRepository.
func (r *bookingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM bookings WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return booking.ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
