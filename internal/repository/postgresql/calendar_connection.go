package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/calendar"
	"github.com/boardroom-booker/booker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"golang.org/x/oauth2"
)

type calendarConnectionRepositoryImpl struct {
	db *database.DB
}

// NewCalendarConnectionRepository creates a new calendar connection repository instance
func NewCalendarConnectionRepository(db *database.DB) calendar.ConnectionRepository {
	return &calendarConnectionRepositoryImpl{db: db}
}

func scanConnection(row pgx.Row) (calendar.Connection, error) {
	var conn calendar.Connection
	var tokenJSON []byte
	err := row.Scan(&conn.ID, &conn.UserID, &conn.Provider, &tokenJSON, &conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		return calendar.Connection{}, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenJSON, &token); err != nil {
		return calendar.Connection{}, fmt.Errorf("failed to decode stored token: %w", err)
	}
	conn.Token = token
	return conn, nil
}

// Upsert implements calendar.ConnectionRepository.
func (r *calendarConnectionRepositoryImpl) Upsert(ctx context.Context, conn calendar.Connection) (calendar.Connection, error) {
	q := GetQuerier(ctx, r.db)

	tokenJSON, err := json.Marshal(conn.Token)
	if err != nil {
		return calendar.Connection{}, fmt.Errorf("failed to encode token: %w", err)
	}

	query := `
		INSERT INTO calendar_connections (user_id, provider, token)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET token = EXCLUDED.token, updated_at = NOW()
		RETURNING id, user_id, provider, token, created_at, updated_at
	`

	saved, err := scanConnection(q.QueryRow(ctx, query, conn.UserID, conn.Provider, tokenJSON))
	if err != nil {
		return calendar.Connection{}, fmt.Errorf("failed to upsert calendar connection: %w", err)
	}
	return saved, nil
}

// GetByUserAndProvider implements calendar.ConnectionRepository.
func (r *calendarConnectionRepositoryImpl) GetByUserAndProvider(ctx context.Context, userID string, provider calendar.Provider) (calendar.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, provider, token, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1 AND provider = $2
	`

	conn, err := scanConnection(q.QueryRow(ctx, query, userID, provider))
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Connection{}, calendar.ErrConnectionNotFound
		}
		return calendar.Connection{}, fmt.Errorf("failed to get calendar connection: %w", err)
	}
	return conn, nil
}

// ListByUser implements calendar.ConnectionRepository.
func (r *calendarConnectionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]calendar.Connection, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, provider, token, created_at, updated_at
		FROM calendar_connections
		WHERE user_id = $1
		ORDER BY provider
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar connections: %w", err)
	}
	defer rows.Close()

	var conns []calendar.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar connection: %w", err)
		}
		conns = append(conns, conn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return conns, nil
}

// Delete implements calendar.ConnectionRepository.
func (r *calendarConnectionRepositoryImpl) Delete(ctx context.Context, userID string, provider calendar.Provider) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM calendar_connections WHERE user_id = $1 AND provider = $2 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, userID, provider).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrConnectionNotFound
		}
		return fmt.Errorf("failed to delete calendar connection: %w", err)
	}
	return nil
}
