//go:build integration

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/app/config"
	"hopital-core/internal/infrastructure/database/bootstrap"
	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/modules/auth/queries"
)

func newIntegrationAuthService(t *testing.T) (*AuthService, *postgres.Client) {
	t.Helper()

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	db, err := postgres.NewClient(config.NewPostgresConfig(cfg))
	if err != nil {
		t.Skipf("PostgreSQL indisponible: %v", err)
	}
	t.Cleanup(db.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		t.Skipf("PostgreSQL indisponible: %v", err)
	}
	require.NoError(t, bootstrap.NewMigrationManager(db).Run(ctx))

	redisClient, err := redis.NewClient(config.NewRedisConfig(cfg), redis.NewKeyGenerator("test"))
	if err != nil {
		t.Skipf("Redis indisponible: %v", err)
	}
	t.Cleanup(redisClient.Close)

	return NewAuthService(db, redisClient, NewTokenService(cfg)), db
}

// Le fallback PostgreSQL doit accepter un JWT complet (bien plus long
// que 128 caractères) et le retrouver à la vérification.
func TestLogout_BlacklistPostgres(t *testing.T) {
	service, db := newIntegrationAuthService(t)
	ctx := context.Background()

	refreshToken, _, err := service.tokens.IssueRefreshToken(uuid.New(), "technicien")
	require.NoError(t, err)
	require.Greater(t, len(refreshToken), 128)

	service.Logout(ctx, refreshToken)

	var blacklisted bool
	require.NoError(t, db.QueryRow(ctx, queries.AuthQueries.IsBlacklisted, refreshToken).Scan(&blacklisted))
	assert.True(t, blacklisted)

	// Un token révoqué ne se rafraîchit plus
	_, err = service.Refresh(ctx, refreshToken)
	require.Error(t, err)

	// La purge n'élimine que les entrées expirées
	require.NoError(t, service.PurgeBlacklist(ctx))
	require.NoError(t, db.QueryRow(ctx, queries.AuthQueries.IsBlacklisted, refreshToken).Scan(&blacklisted))
	assert.True(t, blacklisted)
}
