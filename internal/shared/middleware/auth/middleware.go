package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	authServices "hopital-core/internal/modules/auth/services"
	"hopital-core/internal/shared/policy"
)

// AuthMiddlewareStack pile des middlewares d'authentification/autorisation
type AuthMiddlewareStack struct {
	Session *SessionMiddleware
	Roles   *RoleMiddleware
}

func NewAuthMiddlewareStack(tokens *authServices.TokenService, profils *authServices.ProfilService) *AuthMiddlewareStack {
	return &AuthMiddlewareStack{
		Session: NewSessionMiddleware(tokens, profils),
		Roles:   NewRoleMiddleware(),
	}
}

// Protected session valide uniquement, sans exigence de rôle
func Protected(stack *AuthMiddlewareStack) []gin.HandlerFunc {
	return []gin.HandlerFunc{stack.Session.Handler()}
}

// Require session valide + exigence de rôles explicite
func Require(stack *AuthMiddlewareStack, req policy.Requirement) []gin.HandlerFunc {
	return []gin.HandlerFunc{stack.Session.Handler(), stack.Roles.Require(req)}
}

// RequireRoles session valide + rôles principaux
func RequireRoles(stack *AuthMiddlewareStack, roles ...string) []gin.HandlerFunc {
	return Require(stack, policy.RequireRoles(roles...))
}

// RequireMetiers session valide + rôles métier
func RequireMetiers(stack *AuthMiddlewareStack, metiers ...string) []gin.HandlerFunc {
	return Require(stack, policy.RequireMetiers(metiers...))
}

// RequireAdmin session valide + administrateur
func RequireAdmin(stack *AuthMiddlewareStack) []gin.HandlerFunc {
	return RequireRoles(stack, policy.RoleAdmin)
}

// Module Fx pour l'injection de dépendances
var AuthMiddlewareModule = fx.Options(
	fx.Provide(NewAuthMiddlewareStack),
)
