package domain

import (
	"context"
	"time"
)

// Identity is the resolved caller identity carried by a verified token.
// Absence of an Identity means the request is unauthenticated.
type Identity struct {
	UserID   string
	Email    string
	Nickname string
}

// Account represents a login account backing an identity.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(userID, email, nickname string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller's identity.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// AccountRepository defines the interface for account storage.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// AuthService defines signup and login.
type AuthService interface {
	SignUp(ctx context.Context, email, password, nickname string) (*Account, error)
	// Login verifies credentials and returns a bearer token and the account.
	Login(ctx context.Context, email, password string) (string, *Account, error)
}
