package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"soapbox/config"
	"soapbox/internal/domain/service"
)

// userIDClaim is the JWT claim carrying the authenticated user's identity.
const userIDClaim = "user_id"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is read from configuration once at construction and never mutated.
type jwtService struct {
	secret     string
	defaultTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance. The
// algorithm identifier is fixed: anything other than HS256 is a config error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth.Algorithm != "" && cfg.Auth.Algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, errors.Errorf("unsupported signing algorithm: %s", cfg.Auth.Algorithm)
	}

	return &jwtService{
		secret:     cfg.Auth.Secret,
		defaultTTL: time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed token encoding the user id and expiry. A zero ttl
// falls back to the configured default; a negative ttl mints an
// already-expired token, which tests rely on.
func (s *jwtService) Issue(userID int64, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	claims := jwt.MapClaims{
		userIDClaim: userID,
		"exp":       time.Now().UTC().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's structure, signature, and expiry. Expiry is
// validated against wall-clock UTC with no leeway. The failure mode is always
// one of the two service sentinels so callers can branch without inspecting
// library errors.
func (s *jwtService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, service.ErrTokenExpired
		}

		return 0, service.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, service.ErrTokenMalformed
	}

	// JSON numbers decode as float64; an absent user_id claim is malformed.
	rawID, ok := claims[userIDClaim].(float64)
	if !ok {
		return 0, service.ErrTokenMalformed
	}

	return int64(rawID), nil
}

// DefaultTTL returns the configured default token lifetime.
func (s *jwtService) DefaultTTL() time.Duration {
	return s.defaultTTL
}
