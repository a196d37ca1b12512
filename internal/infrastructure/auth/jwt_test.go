package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/shared/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	token, err := svc.Issue("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestJWTService_Issue_ExpirySetFromTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	token, err := svc.Issue("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, lifetime)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Issue("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeTokenExpired, appErr.Type)
	assert.Equal(t, 401, appErr.Code)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	claims, err := svc.Verify("not-a-jwt")
	assert.Nil(t, claims)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeTokenMalformed, appErr.Type)
	assert.Equal(t, 401, appErr.Code)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", 24)
	verifier := NewJWTService("secret-two", 24)

	token, err := issuer.Issue("google-sub-123", "user@example.com", "Test User")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeTokenMalformed, errors.GetAppError(err).Type)
}

func TestJWTService_Verify_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	// An unsigned token must never pass verification.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "google-sub-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	require.Error(t, err)
}
