package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hopital-core/internal/app/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims claims des tokens émis. Le rôle principal voyage dans l'access
// token ; le rôle métier est résolu côté serveur à chaque requête.
type Claims struct {
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService émet et vérifie les tokens JWT signés HMAC
type TokenService struct {
	secret          []byte
	issuer          string
	accessTTL       time.Duration
	refreshTTL      time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.JWT.Secret),
		issuer:     cfg.JWT.Issuer,
		accessTTL:  cfg.JWT.AccessTokenTTL,
		refreshTTL: cfg.JWT.RefreshTokenTTL,
	}
}

// IssueAccessToken émet un access token portant le rôle principal
func (s *TokenService) IssueAccessToken(userID uuid.UUID, role string) (string, time.Time, error) {
	return s.issue(userID, role, TokenTypeAccess, s.accessTTL)
}

// IssueRefreshToken émet un refresh token (déposé en cookie http-only)
func (s *TokenService) IssueRefreshToken(userID uuid.UUID, role string) (string, time.Time, error) {
	return s.issue(userID, role, TokenTypeRefresh, s.refreshTTL)
}

func (s *TokenService) issue(userID uuid.UUID, role, tokenType string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("impossible de signer le token: %w", err)
	}

	return signed, expiresAt, nil
}

// Parse vérifie la signature, l'émetteur, l'expiration et le type attendu
func (s *TokenService) Parse(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("token invalide: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("type de token inattendu: %s", claims.TokenType)
	}

	return claims, nil
}

// RefreshTTL expose la durée de vie du refresh token (TTL cookie et blacklist)
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}
