package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "vincula/pkg/domain-errors"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	svc := NewJWTService("test-signing-key", "vincula")

	token, err := svc.GenerateAdminToken(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "vincula", claims.Issuer)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-signing-key", "vincula")

	token, err := svc.GenerateAdminToken(-time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := NewJWTService("key-one", "vincula").GenerateAdminToken(time.Hour)
	require.NoError(t, err)

	_, err = NewJWTService("key-two", "vincula").ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-signing-key", "vincula")
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestAdapterMapsClaims(t *testing.T) {
	svc := NewJWTService("test-signing-key", "vincula")
	token, err := svc.GenerateAdminToken(time.Hour)
	require.NoError(t, err)

	claims, err := NewJWTServiceAdapter(svc).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, RoleAdmin, claims.Subject)
}
