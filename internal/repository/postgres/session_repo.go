package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

const sessionColumns = `id, conference_id, name, highlights, speaker, duration, type_of_session, date, start_time, organizer_id, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	var dateNull, startNull sql.NullTime
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, pq.Array(&s.Highlights), &s.Speaker,
		&s.Duration, &s.TypeOfSession, &dateNull, &startNull, &s.OrganizerID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	if startNull.Valid {
		s.StartTime = &startNull.Time
	}
	if s.Highlights == nil {
		s.Highlights = []string{}
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, name, highlights, speaker, duration, type_of_session, date, start_time, organizer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, pq.Array(s.Highlights), s.Speaker, s.Duration,
		s.TypeOfSession, s.Date, s.StartTime, s.OrganizerID, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE conference_id = $1 ORDER BY date, start_time, name`
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE conference_id = $1 AND type_of_session = $2 ORDER BY date, start_time, name`
	return r.list(ctx, query, conferenceID, typeOfSession)
}

func (r *sessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE speaker = $1 ORDER BY date, start_time, name`
	return r.list(ctx, query, speaker)
}

func (r *sessionRepository) ListBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE speaker = $1 AND conference_id = $2 ORDER BY date, start_time, name`
	return r.list(ctx, query, speaker, conferenceID)
}

func (r *sessionRepository) CountBySpeakerAndConference(ctx context.Context, speaker, conferenceID string) (int, error) {
	query := `SELECT COUNT(*) FROM sessions WHERE speaker = $1 AND conference_id = $2`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, speaker, conferenceID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) ListPast(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE date < CURRENT_DATE ORDER BY date, start_time, name`
	return r.list(ctx, query)
}

func (r *sessionRepository) ListToday(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE date = CURRENT_DATE ORDER BY start_time, name`
	return r.list(ctx, query)
}

func (r *sessionRepository) ListStartingBefore(ctx context.Context, hour int) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE start_time IS NOT NULL AND start_time <= make_time($1, 0, 0) ORDER BY start_time, name`
	return r.list(ctx, query, hour)
}

func (r *sessionRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ANY($1) ORDER BY date, start_time, name`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
