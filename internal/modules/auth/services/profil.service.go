package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/modules/auth/queries"
)

// Valeur sentinelle du cache pour un compte sans profil technique
const aucunProfil = "__aucun__"

// ProfilService résout le rôle métier d'un utilisateur.
// STRATÉGIE : cache Redis d'abord (vérifié à chaque requête protégée),
// fallback PostgreSQL source de vérité.
type ProfilService struct {
	db          *postgres.Client
	redisClient *redis.Client
}

func NewProfilService(db *postgres.Client, redisClient *redis.Client) *ProfilService {
	return &ProfilService{
		db:          db,
		redisClient: redisClient,
	}
}

// GetRoleMetier retourne le rôle métier d'un utilisateur, nil si le compte
// ne porte pas de profil technique
func (s *ProfilService) GetRoleMetier(ctx context.Context, userID string) (*string, error) {
	key := s.redisClient.Keys().ProfilTechnique(userID)

	// 1. Cache Redis. Toute erreur (clé absente ou Redis indisponible)
	// bascule sur PostgreSQL.
	cached, err := s.redisClient.Get(ctx, key)
	if err == nil {
		if cached == aucunProfil {
			return nil, nil
		}
		return &cached, nil
	}

	// 2. Source de vérité PostgreSQL
	var roleMetier string
	err = s.db.QueryRow(ctx, queries.AuthQueries.GetRoleMetierByUserID, userID).Scan(&roleMetier)

	if err == pgx.ErrNoRows {
		s.cache(ctx, key, aucunProfil)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.cache(ctx, key, roleMetier)
	return &roleMetier, nil
}

// Invalidate purge le cache après modification ou suppression d'un profil
func (s *ProfilService) Invalidate(ctx context.Context, userID string) {
	key := s.redisClient.Keys().ProfilTechnique(userID)
	s.redisClient.Del(ctx, key)
}

func (s *ProfilService) cache(ctx context.Context, key, value string) {
	// Best effort : une erreur de cache ne bloque pas la requête
	s.redisClient.Set(ctx, key, value, 15*time.Minute)
}
