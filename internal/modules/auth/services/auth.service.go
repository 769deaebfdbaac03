package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/modules/auth/dto"
	"hopital-core/internal/modules/auth/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/utils"
)

// AuthService orchestre connexion, renouvellement et révocation de tokens
type AuthService struct {
	db          *postgres.Client
	redisClient *redis.Client
	tokens      *TokenService
}

func NewAuthService(db *postgres.Client, redisClient *redis.Client, tokens *TokenService) *AuthService {
	return &AuthService{
		db:          db,
		redisClient: redisClient,
		tokens:      tokens,
	}
}

// LoginResult résultat interne de connexion (le refresh token part en cookie)
type LoginResult struct {
	Response         dto.LoginResponse
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Login vérifie les identifiants et émet la paire access/refresh
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error) {
	var (
		userID       uuid.UUID
		email        string
		passwordHash string
		role         string
		nom          string
		prenoms      string
		roleMetier   *string
	)

	err := s.db.QueryRow(ctx, queries.AuthQueries.GetByEmail, req.Email).Scan(
		&userID,
		&email,
		&passwordHash,
		&role,
		&nom,
		&prenoms,
		&roleMetier,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.Unauthorized("Identifiants invalides")
	}
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la récupération du compte: %w", err)
	}

	if !utils.VerifyPassword(req.Password, passwordHash) {
		return nil, apperror.Unauthorized("Identifiants invalides")
	}

	accessToken, accessExpiresAt, err := s.tokens.IssueAccessToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("émission access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokens.IssueRefreshToken(userID, role)
	if err != nil {
		return nil, fmt.Errorf("émission refresh token: %w", err)
	}

	return &LoginResult{
		Response: dto.LoginResponse{
			AccessToken: accessToken,
			ExpiresAt:   accessExpiresAt.Format(time.RFC3339),
			Utilisateur: dto.UtilisateurData{
				ID:         userID.String(),
				Email:      email,
				Nom:        nom,
				Prenoms:    prenoms,
				Role:       role,
				RoleMetier: roleMetier,
			},
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh émet un nouvel access token depuis un refresh token non révoqué
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, apperror.Unauthorized("Refresh token invalide ou expiré")
	}

	if s.isBlacklisted(ctx, refreshToken) {
		return nil, apperror.Unauthorized("Refresh token révoqué")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.Unauthorized("Refresh token invalide ou expiré")
	}

	accessToken, expiresAt, err := s.tokens.IssueAccessToken(userID, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("émission access token: %w", err)
	}

	return &dto.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	}, nil
}

// Logout révoque un refresh token via la blacklist. Idempotent : un token
// déjà révoqué ou invalide vaut déconnexion réussie.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}

	claims, err := s.tokens.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		// Token invalide ou expiré : rien à révoquer
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}

	// Blacklist Redis (vérifiée en priorité) + fallback PostgreSQL
	key := s.redisClient.Keys().RefreshBlacklist(refreshToken)
	if err := s.redisClient.Set(ctx, key, "1", ttl); err != nil {
		fmt.Printf("[AUTH] ⚠️ Blacklist Redis échouée: %v\n", err)
	}

	if err := s.db.Exec(ctx, queries.AuthQueries.InsertBlacklist, refreshToken, claims.ExpiresAt.Time); err != nil {
		fmt.Printf("[AUTH] ⚠️ Blacklist PostgreSQL échouée: %v\n", err)
	}
}

// PurgeBlacklist retire les tokens expirés du fallback PostgreSQL.
// Les clés Redis expirent d'elles-mêmes via leur TTL.
func (s *AuthService) PurgeBlacklist(ctx context.Context) error {
	return s.db.Exec(ctx, queries.AuthQueries.CleanExpiredBlacklist)
}

func (s *AuthService) isBlacklisted(ctx context.Context, refreshToken string) bool {
	key := s.redisClient.Keys().RefreshBlacklist(refreshToken)
	if exists, err := s.redisClient.Exists(ctx, key); err == nil && exists {
		return true
	}

	// Fallback PostgreSQL si Redis est indisponible ou sans entrée
	var blacklisted bool
	if err := s.db.QueryRow(ctx, queries.AuthQueries.IsBlacklisted, refreshToken).Scan(&blacklisted); err != nil {
		return false
	}
	return blacklisted
}
