package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

func (r *speakerRepository) GetByName(ctx context.Context, displayName string) (*domain.Speaker, error) {
	query := `
		SELECT display_name, main_email, bio, session_ids
		FROM speakers
		WHERE display_name = $1
	`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, displayName).Scan(
		&s.DisplayName, &s.MainEmail, &s.Bio, pq.Array(&s.SessionIDs),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if s.SessionIDs == nil {
		s.SessionIDs = []string{}
	}
	return s, nil
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (display_name, main_email, bio, session_ids)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.DisplayName, s.MainEmail, s.Bio, pq.Array(s.SessionIDs))
	return err
}

func (r *speakerRepository) Update(ctx context.Context, s *domain.Speaker) error {
	query := `
		UPDATE speakers
		SET main_email = $2, bio = $3
		WHERE display_name = $1
	`
	result, err := r.DB.ExecContext(ctx, query, s.DisplayName, s.MainEmail, s.Bio)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *speakerRepository) AppendSessionID(ctx context.Context, displayName, sessionID string) error {
	query := `
		UPDATE speakers
		SET session_ids = array_append(session_ids, $2)
		WHERE display_name = $1
	`
	result, err := r.DB.ExecContext(ctx, query, displayName, sessionID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *speakerRepository) ListAll(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT display_name, main_email, bio, session_ids
		FROM speakers
		ORDER BY display_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.DisplayName, &s.MainEmail, &s.Bio, pq.Array(&s.SessionIDs)); err != nil {
			return nil, err
		}
		if s.SessionIDs == nil {
			s.SessionIDs = []string{}
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
