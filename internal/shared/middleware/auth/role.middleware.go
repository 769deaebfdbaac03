package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hopital-core/internal/shared/policy"
)

// RoleMiddleware applique les exigences de rôles aux routes protégées.
// La sémantique OU/ET est explicite dans l'exigence, jamais implicite.
type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

// Require vérifie une exigence de rôles sur l'identité du contexte
func (m *RoleMiddleware) Require(req policy.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		identite, ok := CurrentIdentite(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session requise",
				"details": map[string]interface{}{
					"code": "SESSION_REQUIRED",
				},
			})
			return
		}

		if !policy.Allow(identite, req) {
			// Message générique : aucun détail sur la ressource visée
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Accès refusé",
				"details": map[string]interface{}{
					"code": "ACCESS_DENIED",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireRoles raccourci : rôles principaux uniquement
func (m *RoleMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return m.Require(policy.RequireRoles(roles...))
}

// RequireMetiers raccourci : rôles métier uniquement (techniciens)
func (m *RoleMiddleware) RequireMetiers(metiers ...string) gin.HandlerFunc {
	return m.Require(policy.RequireMetiers(metiers...))
}

// RequireAdmin raccourci : administrateurs uniquement
func (m *RoleMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(policy.RoleAdmin)
}
