package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hopital-core/internal/modules/auth/dto"
	"hopital-core/internal/modules/auth/services"
	"hopital-core/internal/shared/apperror"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

const refreshCookieName = "refresh_token"

type AuthController struct {
	authService *services.AuthService
	profils     *services.ProfilService
	validator   *validator.Validate
}

func NewAuthController(authService *services.AuthService, profils *services.ProfilService) *AuthController {
	return &AuthController{
		authService: authService,
		profils:     profils,
		validator:   validator.New(),
	}
}

// Login - POST /api/v1/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données de connexion invalides",
			"details": map[string]interface{}{
				"code": "INVALID_REQUEST_FORMAT",
			},
		})
		return
	}

	if err := c.validator.Struct(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Email et mot de passe requis",
			"details": map[string]interface{}{
				"code": "VALIDATION_ERROR",
			},
		})
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// Refresh token en cookie http-only strict, jamais dans le corps
	c.setRefreshCookie(ctx, result.RefreshToken, result.RefreshExpiresAt)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Response,
	})
}

// Refresh - POST /api/v1/auth/refresh
func (c *AuthController) Refresh(ctx *gin.Context) {
	refreshToken, err := ctx.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token requis",
			"details": map[string]interface{}{
				"code": "REFRESH_TOKEN_REQUIRED",
			},
		})
		return
	}

	result, err := c.authService.Refresh(ctx.Request.Context(), refreshToken)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// Logout - POST /api/v1/auth/logout
// Idempotent : un token absent ou déjà révoqué vaut déconnexion réussie
func (c *AuthController) Logout(ctx *gin.Context) {
	refreshToken, _ := ctx.Cookie(refreshCookieName)

	c.authService.Logout(ctx.Request.Context(), refreshToken)
	c.clearRefreshCookie(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Déconnexion réussie",
	})
}

// Me - GET /api/v1/auth/me (protégé par SessionMiddleware)
func (c *AuthController) Me(ctx *gin.Context) {
	identite, ok := authMiddleware.CurrentIdentite(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Session context missing - SessionMiddleware required",
			"details": map[string]interface{}{
				"code": "SESSION_CONTEXT_MISSING",
			},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":          identite.ID.String(),
			"role":        identite.Role,
			"role_metier": identite.RoleMetier,
		},
	})
}

func (c *AuthController) setRefreshCookie(ctx *gin.Context, token string, expiresAt time.Time) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		refreshCookieName,
		token,
		int(time.Until(expiresAt).Seconds()),
		"/api/v1/auth",
		"",
		true, // secure
		true, // http-only
	)
}

func (c *AuthController) clearRefreshCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(refreshCookieName, "", -1, "/api/v1/auth", "", true, true)
}

func respondError(ctx *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		ctx.JSON(appErr.StatusCode, gin.H{
			"error":   appErr.Message,
			"details": appErr.Details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erreur interne lors de l'authentification",
		"details": map[string]interface{}{
			"code": "INTERNAL_ERROR",
		},
	})
}
