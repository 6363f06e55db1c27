package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const userKey ctxKey = 1

// WithUser adds a username to the context
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey, username)
}

// Username extracts the username from the context, empty if unauthenticated
func Username(ctx context.Context) string {
	v := ctx.Value(userKey)
	if v == nil {
		return ""
	}
	return v.(string)
}

// JWT wraps a signing secret for issuing/verifying tokens
type JWT struct{ secret []byte }

// New creates a new JWT signer/verifier.
func New(secret string) *JWT { return &JWT{secret: []byte(secret)} }

// Verify checks a token and returns the sub (username) claim
func (j *JWT) Verify(tok string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("no sub")
	}
	return sub, nil
}

// Sign creates a token for username with the given TTL
func (j *JWT) Sign(username string, ttl time.Duration) (string, error) {
	if username == "" {
		return "", errors.New("empty username")
	}
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(j.secret)
}
