package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/app/config"
	"hopital-core/internal/shared/policy"
)

func newTestTokenService() *TokenService {
	return NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			Issuer:          "hopital-core",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	})
}

func TestIssueAccessToken_PorteLeRole(t *testing.T) {
	svc := newTestTokenService()
	userID := uuid.New()

	token, expiresAt, err := svc.IssueAccessToken(userID, policy.RoleTechnicien)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Parse(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, policy.RoleTechnicien, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestParse_RefuseMauvaisType(t *testing.T) {
	svc := newTestTokenService()

	refresh, _, err := svc.IssueRefreshToken(uuid.New(), policy.RolePatient)
	require.NoError(t, err)

	// Un refresh token ne passe pas comme access token
	_, err = svc.Parse(refresh, TokenTypeAccess)
	assert.Error(t, err)

	_, err = svc.Parse(refresh, TokenTypeRefresh)
	assert.NoError(t, err)
}

func TestParse_RefuseMauvaiseSignature(t *testing.T) {
	svc := newTestTokenService()
	autre := NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			Secret:          "autre-secret",
			Issuer:          "hopital-core",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	})

	token, _, err := autre.IssueAccessToken(uuid.New(), policy.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Parse(token, TokenTypeAccess)
	assert.Error(t, err)
}

func TestParse_RefuseTokenExpire(t *testing.T) {
	svc := NewTokenService(&config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			Issuer:          "hopital-core",
			AccessTokenTTL:  -time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	})

	token, _, err := svc.IssueAccessToken(uuid.New(), policy.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Parse(token, TokenTypeAccess)
	assert.Error(t, err)
}
