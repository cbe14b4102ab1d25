package postgresql

import (
	"context"
	"fmt"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/room"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, company_id, name, description, capacity, room_type, location,
		equipment, status, access_level, operating_hours_start, operating_hours_end,
		visibility_type, visible_companies, created_at, updated_at`

type roomRepositoryImpl struct {
	db *database.DB
}

// NewRoomRepository creates a new room repository instance
func NewRoomRepository(db *database.DB) room.RoomRepository {
	return &roomRepositoryImpl{db: db}
}

func scanRoom(row pgx.Row) (room.Room, error) {
	var rm room.Room
	err := row.Scan(
		&rm.ID, &rm.CompanyID, &rm.Name, &rm.Description, &rm.Capacity, &rm.RoomType,
		&rm.Location, &rm.Equipment, &rm.Status, &rm.AccessLevel,
		&rm.OperatingHoursStart, &rm.OperatingHoursEnd,
		&rm.VisibilityType, &rm.VisibleCompanies, &rm.CreatedAt, &rm.UpdatedAt,
	)
	return rm, err
}

// GetByID implements room.RoomRepository.
func (r *roomRepositoryImpl) GetByID(ctx context.Context, id string) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1`, roomColumns)

	rm, err := scanRoom(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to get room by id: %w", err)
	}
	return rm, nil
}

// GetByIDForUpdate implements room.RoomRepository. The FOR UPDATE lock
// serializes concurrent booking writers against the same room.
func (r *roomRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1 FOR UPDATE`, roomColumns)

	rm, err := scanRoom(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return room.Room{}, room.ErrRoomNotFound
		}
		return room.Room{}, fmt.Errorf("failed to lock room: %w", err)
	}
	return rm, nil
}

// ListByCompany implements room.RoomRepository.
func (r *roomRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE company_id = $1 ORDER BY name`, roomColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

// ListVisibleToCompanies implements room.RoomRepository.
func (r *roomRepositoryImpl) ListVisibleToCompanies(ctx context.Context, companyIDs []string) ([]room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM rooms
		WHERE company_id = ANY($1::uuid[])
		   OR visibility_type = 'public'
		   OR (visibility_type = 'specific_companies' AND visible_companies && $1::uuid[])
		ORDER BY name
	`, roomColumns)

	rows, err := q.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible rooms: %w", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func collectRooms(rows pgx.Rows) ([]room.Room, error) {
	var rooms []room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return rooms, nil
}

// ExistsByName implements room.RoomRepository.
func (r *roomRepositoryImpl) ExistsByName(ctx context.Context, companyID, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rooms WHERE company_id = $1 AND name = $2)`,
		companyID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check room name: %w", err)
	}
	return exists, nil
}

// Create implements room.RoomRepository.
func (r *roomRepositoryImpl) Create(ctx context.Context, newRoom room.Room) (room.Room, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO rooms (company_id, name, description, capacity, room_type, location,
			equipment, status, access_level, operating_hours_start, operating_hours_end,
			visibility_type, visible_companies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`, roomColumns)

	created, err := scanRoom(q.QueryRow(ctx, query,
		newRoom.CompanyID, newRoom.Name, newRoom.Description, newRoom.Capacity,
		newRoom.RoomType, newRoom.Location, newRoom.Equipment, newRoom.Status,
		newRoom.AccessLevel, newRoom.OperatingHoursStart, newRoom.OperatingHoursEnd,
		newRoom.VisibilityType, newRoom.VisibleCompanies,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return room.Room{}, room.ErrRoomNameExists
		}
		return room.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return created, nil
}

// Update implements room.RoomRepository.
func (r *roomRepositoryImpl) Update(ctx context.Context, id string, req room.UpdateRoomRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rooms
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			capacity = COALESCE($3, capacity),
			room_type = COALESCE($4, room_type),
			location = COALESCE($5, location),
			equipment = COALESCE($6, equipment),
			status = COALESCE($7, status),
			access_level = COALESCE($8, access_level),
			operating_hours_start = COALESCE($9, operating_hours_start),
			operating_hours_end = COALESCE($10, operating_hours_end),
			visibility_type = COALESCE($11, visibility_type),
			visible_companies = COALESCE($12, visible_companies),
			updated_at = NOW()
		WHERE id = $13
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Name, req.Description, req.Capacity, req.RoomType, req.Location,
		req.Equipment, req.Status, req.AccessLevel,
		req.OperatingHoursStart, req.OperatingHoursEnd,
		req.VisibilityType, req.VisibleCompanies, id,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return room.ErrRoomNotFound
		}
		if isUniqueViolation(err) {
			return room.ErrRoomNameExists
		}
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

// CountBookings implements room.RoomRepository.
func (r *roomRepositoryImpl) CountBookings(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count room bookings: %w", err)
	}
	return count, nil
}

// Delete implements room.RoomRepository.
func (r *roomRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM rooms WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return room.ErrRoomNotFound
		}
		if isForeignKeyViolation(err) {
			return room.ErrRoomHasBookings
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
