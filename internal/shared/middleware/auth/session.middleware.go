package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authServices "hopital-core/internal/modules/auth/services"
	"hopital-core/internal/shared/policy"
)

// SessionMiddleware valide l'access token Bearer et injecte l'identité
// agissante dans le contexte. Le rôle métier est résolu côté serveur
// (cache Redis, fallback PostgreSQL), jamais lu depuis le token.
type SessionMiddleware struct {
	tokens  *authServices.TokenService
	profils *authServices.ProfilService
}

func NewSessionMiddleware(tokens *authServices.TokenService, profils *authServices.ProfilService) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:  tokens,
		profils: profils,
	}
}

func (m *SessionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token d'authentification requis",
				"details": map[string]interface{}{
					"code": "TOKEN_REQUIRED",
				},
			})
			return
		}

		claims, err := m.tokens.Parse(token, authServices.TokenTypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token invalide ou expiré",
				"details": map[string]interface{}{
					"code": "INVALID_TOKEN",
				},
			})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token invalide ou expiré",
				"details": map[string]interface{}{
					"code": "INVALID_TOKEN",
				},
			})
			return
		}

		roleMetier, err := m.profils.GetRoleMetier(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Erreur lors de la résolution du profil",
				"details": map[string]interface{}{
					"code": "PROFIL_RESOLUTION_ERROR",
				},
			})
			return
		}

		identite := policy.Identite{
			ID:         userID,
			Role:       claims.Role,
			RoleMetier: roleMetier,
		}

		c.Set("identite", identite)
		c.Set("utilisateur_id", claims.Subject)

		c.Next()
	}
}

// CurrentIdentite récupère l'identité injectée par le SessionMiddleware
func CurrentIdentite(c *gin.Context) (policy.Identite, bool) {
	value, exists := c.Get("identite")
	if !exists {
		return policy.Identite{}, false
	}

	identite, ok := value.(policy.Identite)
	return identite, ok
}

func extractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
