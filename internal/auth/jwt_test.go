package auth

import (
	"testing"
	"time"

	"athlete-service/internal/domain/user"
	apperrors "athlete-service/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-enough-length-0123456789"

func testUser() *user.User {
	return &user.User{
		ID:       1,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     user.RoleUser,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, user.RoleUser, claims.Role)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService(testSecret, 0)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, DefaultTokenTTL.Seconds(), remaining.Seconds(), 5)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, time.Nanosecond)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, time.Hour)
	verifier := NewJWTService("another-secret-key-with-enough-length-987", time.Hour)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	token, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		Role:   user.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
