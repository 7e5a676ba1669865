package auth

import (
	"testing"
	"time"

	"soapbox/config"
	"soapbox/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		Secret:          "test_secret_key_very_long_for_testing",
		Algorithm:       "HS256",
		TokenTTLMinutes: 30,
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := int64(42)

	token, err := jwtService.Issue(userID, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The claim decodes back to the issued user id immediately after issuance.
	gotID, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	// Short-lived test token, already past its expiry once issued.
	token, err := jwtService.Issue(7, -time.Minute)
	require.NoError(t, err)

	gotID, err := jwtService.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Zero(t, gotID)
}

func TestJWTService_ShortTTLExpires(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue(7, 50*time.Millisecond)
	require.NoError(t, err)

	// Valid before expiry...
	gotID, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gotID)

	// ...expired after the ttl passes (exp has second resolution, so wait past
	// the full second boundary).
	time.Sleep(1100 * time.Millisecond)
	_, err = jwtService.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	gotID, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
	assert.Zero(t, gotID)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue(42, 0)
	require.NoError(t, err)

	// A token signed under a different secret fails as malformed.
	otherCfg := newTestAuthConfig()
	otherCfg.Auth.Secret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = otherService.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_MissingUserIDClaim(t *testing.T) {
	jwtService, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	// Hand-build a structurally valid token without the user_id claim.
	token := mintTokenWithoutUserID(t, newTestAuthConfig().Auth.Secret)
	_, err = jwtService.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func mintTokenWithoutUserID(t *testing.T, secret string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"exp": time.Now().UTC().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ConfigValidation(t *testing.T) {
	// Empty secret is rejected.
	cfg := newTestAuthConfig()
	cfg.Auth.Secret = ""
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	// Only HS256 is accepted as algorithm identifier.
	cfg = newTestAuthConfig()
	cfg.Auth.Algorithm = "RS256"
	svc, err = NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)

	// An unset identifier falls back to HS256.
	cfg = newTestAuthConfig()
	cfg.Auth.Algorithm = ""
	svc, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestAuthConfig()
	cfg.Auth.TokenTTLMinutes = 15

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, jwtService.DefaultTTL())
}
