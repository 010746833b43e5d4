package auth

import (
	"testing"
	"time"

	"plantcare/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("another_secret_key_used_by_someone_else"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte(testSecret),
		ttl:    time.Hour,
		now:    func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}
	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNonHMAC(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": accessTokenType,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(testSecret))
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "not-a-uuid",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": accessTokenType,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
