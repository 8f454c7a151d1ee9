package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelane/auth-service/internal/auth/domain"
	"github.com/storelane/auth-service/pkg/constant"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", "storelane-auth", "storelane", 60)

	assert.NotNil(t, ts)
	assert.Equal(t, "secret-key", ts.Secret)
	assert.Equal(t, "storelane-auth", ts.Issuer)
	assert.Equal(t, "storelane", ts.Audience)
	assert.Equal(t, 60*time.Minute, ts.TokenExpiry)
	assert.Equal(t, 60*time.Minute, ts.GetTokenExpiry())
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", "storelane-auth", "storelane", 60)

	user := &domain.User{
		ID:        "user-123",
		Email:     "test@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      constant.RoleCustomer,
	}

	before := time.Now()
	token, expiresAt, err := ts.Generate(user)
	after := time.Now()

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, constant.RoleCustomer, claims.Role)
	assert.Equal(t, "storelane-auth", claims.Issuer)
	assert.Contains(t, claims.Audience, "storelane")

	// Expiry is always issuance time plus the configured TTL.
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, claims.IssuedAt.Add(60*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.False(t, expiresAt.Before(before.Add(60*time.Minute).Add(-time.Second)))
	assert.False(t, expiresAt.After(after.Add(60*time.Minute).Add(time.Second)))
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	ts := NewTokenService("correct-secret", "storelane-auth", "storelane", 60)
	other := NewTokenService("wrong-secret", "storelane-auth", "storelane", 60)

	user := &domain.User{ID: "user-123", Email: "test@example.com", Role: constant.RoleCustomer}

	token, _, err := ts.Generate(user)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_WrongAlgorithm(t *testing.T) {
	ts := NewTokenService("secret", "storelane-auth", "storelane", 60)

	// An unsigned token must never verify.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "user-123",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.Error(t, err)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("secret", "storelane-auth", "storelane", 60)

	claims := JWTCustomClaims{
		Email: "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}
