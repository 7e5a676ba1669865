package service

import (
	"errors"
	"time"
)

// Token verification failure modes. Every other failure a caller sees from
// Verify wraps one of these two.
var (
	// ErrTokenExpired is returned when the token's expiry timestamp has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenMalformed is returned when the token structure or signature is
	// invalid, or the user identity claim is absent.
	ErrTokenMalformed = errors.New("token is malformed")
)

// TokenService defines the interface for issuing and verifying signed,
// time-limited session tokens carrying a user identity claim.
type TokenService interface {
	// Issue produces a signed token encoding the user id and an expiry. A
	// zero ttl selects the configured default; callers may pass a short ttl
	// to mint short-lived test tokens.
	Issue(userID int64, ttl time.Duration) (string, error)

	// Verify checks the token's signature and expiry against wall-clock UTC
	// with no grace window, returning the user id claim on success.
	Verify(token string) (int64, error)

	// DefaultTTL returns the configured default token lifetime.
	DefaultTTL() time.Duration
}
