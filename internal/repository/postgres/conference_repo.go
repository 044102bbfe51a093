package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

const conferenceColumns = `id, name, description, organizer_id, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at`

func scanConference(row interface{ Scan(...any) error }) (*domain.Conference, error) {
	c := &domain.Conference{}
	var startNull, endNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.OrganizerID, pq.Array(&c.Topics), &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	if c.Topics == nil {
		c.Topics = []string{}
	}
	return c, nil
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (name, description, organizer_id, topics, city, start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		c.Name, c.Description, c.OrganizerID, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
		c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE organizer_id = $1 ORDER BY name`
	return r.list(ctx, query, organizerID)
}

func (r *conferenceRepository) Update(ctx context.Context, c *domain.Conference) error {
	query := `
		UPDATE conferences
		SET name = $2, description = $3, topics = $4, city = $5, start_date = $6, end_date = $7,
		    month = $8, max_attendees = $9, seats_available = $10, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		c.StartDate, c.EndDate, c.Month, c.MaxAttendees, c.SeatsAvailable,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conferenceRepository) Query(ctx context.Context, filters []domain.ConferenceFilter, orderColumn string) ([]*domain.Conference, error) {
	var where []string
	var args []any
	n := 1
	for _, f := range filters {
		// topics is an array column; "value op ANY(topics)" holds for every
		// whitelisted operator. Columns and operators come from the service
		// whitelists, never from client input.
		if f.Column == "topics" {
			where = append(where, fmt.Sprintf("$%d %s ANY(topics)", n, f.Op))
		} else {
			where = append(where, fmt.Sprintf("%s %s $%d", f.Column, f.Op, n))
		}
		args = append(args, f.Value)
		n++
	}
	query := `SELECT ` + conferenceColumns + ` FROM conferences`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	if orderColumn != "" && orderColumn != "name" {
		query += ` ORDER BY ` + orderColumn + `, name`
	} else {
		query += ` ORDER BY name`
	}
	return r.list(ctx, query, args...)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context, limit int) ([]*domain.Conference, error) {
	query := `
		SELECT id, name FROM conferences
		WHERE seats_available > 0 AND seats_available <= $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c := &domain.Conference{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}

func (r *conferenceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = ANY($1) ORDER BY name`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *conferenceRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}
