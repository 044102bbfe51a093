package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, display_name, main_email, tee_shirt_size, conference_ids, wishlist_session_ids
		FROM profiles
		WHERE id = $1
	`
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.DisplayName, &p.MainEmail, &p.TeeShirtSize,
		pq.Array(&p.ConferenceIDs), pq.Array(&p.WishlistSessionIDs),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if p.ConferenceIDs == nil {
		p.ConferenceIDs = []string{}
	}
	if p.WishlistSessionIDs == nil {
		p.WishlistSessionIDs = []string{}
	}
	return p, nil
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, display_name, main_email, tee_shirt_size, conference_ids, wishlist_session_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.DisplayName, p.MainEmail, p.TeeShirtSize,
		pq.Array(p.ConferenceIDs), pq.Array(p.WishlistSessionIDs),
	)
	return err
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $2, tee_shirt_size = $3
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, p.ID, p.DisplayName, p.TeeShirtSize)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) AddWishlistSession(ctx context.Context, profileID, sessionID string) error {
	query := `
		UPDATE profiles
		SET wishlist_session_ids = array_append(wishlist_session_ids, $2)
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, profileID, sessionID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) RemoveWishlistSession(ctx context.Context, profileID, sessionID string) error {
	query := `
		UPDATE profiles
		SET wishlist_session_ids = array_remove(wishlist_session_ids, $2)
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, profileID, sessionID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Register appends the conference to the profile's attend list and decrements
// the conference's seat count in one transaction. Both rows are locked first so
// concurrent registrations serialize on the seat check.
func (r *profileRepository) Register(ctx context.Context, profileID, conferenceID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var conferenceIDs []string
	err = tx.QueryRowContext(ctx,
		`SELECT conference_ids FROM profiles WHERE id = $1 FOR UPDATE`,
		profileID,
	).Scan(pq.Array(&conferenceIDs))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	for _, id := range conferenceIDs {
		if id == conferenceID {
			return fmt.Errorf("already registered for this conference: %w", domain.ErrConflict)
		}
	}
	if seats <= 0 {
		return fmt.Errorf("no seats available: %w", domain.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE profiles SET conference_ids = array_append(conference_ids, $2) WHERE id = $1`,
		profileID, conferenceID,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Unregister removes the conference from the attend list and returns the seat
// in one transaction. Returns false without error when the profile was not
// registered for the conference.
func (r *profileRepository) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var conferenceIDs []string
	err = tx.QueryRowContext(ctx,
		`SELECT conference_ids FROM profiles WHERE id = $1 FOR UPDATE`,
		profileID,
	).Scan(pq.Array(&conferenceIDs))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, err
	}

	registered := false
	for _, id := range conferenceIDs {
		if id == conferenceID {
			registered = true
			break
		}
	}
	if !registered {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE profiles SET conference_ids = array_remove(conference_ids, $2) WHERE id = $1`,
		profileID, conferenceID,
	); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = NOW() WHERE id = $1`,
		conferenceID,
	); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *profileRepository) GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string)
	if len(ids) == 0 {
		return names, nil
	}
	query := `SELECT id, display_name FROM profiles WHERE id = ANY($1)`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
