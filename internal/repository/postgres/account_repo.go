package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{
		DB: db,
	}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (email, nickname, password_hash, salt, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, a.Email, a.Nickname, a.PasswordHash, a.Salt, a.CreatedAt).Scan(&a.ID)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, nickname, password_hash, salt, created_at
		FROM accounts
		WHERE email = $1
	`
	a := &domain.Account{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.Nickname, &a.PasswordHash, &a.Salt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
