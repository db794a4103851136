package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"footballer-app/internal/config"
	domain "footballer-app/internal/domain/user"
	jwtsvc "footballer-app/pkg/jwt"
)

func newConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "test-secret",
		TTL:    time.Hour,
		Issuer: "footballer-app-test",
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	svc := jwtsvc.NewService(newConfig())

	teamID := int64(10)
	u := &domain.User{
		ID:      42,
		Role:    domain.RoleCoach,
		TeamID:  &teamID,
		IsAdmin: false,
	}

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, string(domain.RoleCoach), claims.Role)
	require.NotNil(t, claims.TeamID)
	require.Equal(t, int64(10), *claims.TeamID)
	require.False(t, claims.IsAdmin)

	// Identity-клейм переносит все поля, нужные авторизации
	id := claims.Identity()
	require.Equal(t, int64(42), id.UserID)
	require.Equal(t, int64(10), *id.TeamID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc := jwtsvc.NewService(newConfig())

	token, err := svc.GenerateToken(&domain.User{ID: 1})
	require.NoError(t, err)

	other := jwtsvc.NewService(&config.JWTConfig{Secret: "other-secret", TTL: time.Hour, Issuer: "footballer-app-test"})
	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := newConfig()
	cfg.TTL = -time.Minute
	svc := jwtsvc.NewService(cfg)

	token, err := svc.GenerateToken(&domain.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_AdminWithoutTeam(t *testing.T) {
	svc := jwtsvc.NewService(newConfig())

	token, err := svc.GenerateToken(&domain.User{ID: 7, IsAdmin: true})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.True(t, claims.IsAdmin)
	require.Nil(t, claims.TeamID)
}
