package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists reports a registration attempt for a taken username.
var ErrUserExists = errors.New("user exists")

// ErrInvalidCredentials covers both unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// normUsername trims surrounding whitespace; usernames keep their case
func normUsername(s string) string { return strings.TrimSpace(s) }

// CreateUser inserts a new user with a hashed password
func (p *Postgres) CreateUser(ctx context.Context, username, password string) (User, error) {
	username = normUsername(username)
	if username == "" || password == "" {
		return User{}, errors.New("missing username or password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	row := p.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, username, created_at
	`, username, string(hash))

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserExists
		}
		return User{}, err
	}
	return u, nil
}

// GetUserByName returns the user + hashed password for login verification
func (p *Postgres) GetUserByName(ctx context.Context, username string) (User, string, error) {
	username = normUsername(username)

	row := p.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username)

	var u User
	var hash string
	if err := row.Scan(&u.ID, &u.Username, &hash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	return u, hash, nil
}

// VerifyUser checks username + password match
func (p *Postgres) VerifyUser(ctx context.Context, username, password string) (User, error) {
	u, hash, err := p.GetUserByName(ctx, username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
