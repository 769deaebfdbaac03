package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/auth/controllers"
	"hopital-core/internal/modules/auth/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

// Module auth : login / refresh / logout et résolution de l'identité
var Module = fx.Options(
	fx.Provide(services.NewTokenService),
	fx.Provide(services.NewProfilService),
	fx.Provide(services.NewAuthService),
	fx.Provide(controllers.NewAuthController),

	fx.Invoke(RegisterAuthRoutes),
	fx.Invoke(RegisterBlacklistPurge),
)

// RegisterBlacklistPurge purge périodiquement la blacklist PostgreSQL
// des refresh tokens expirés
func RegisterBlacklistPurge(lc fx.Lifecycle, service *services.AuthService) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker := time.NewTicker(time.Hour)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						purgeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
						if err := service.PurgeBlacklist(purgeCtx); err != nil {
							fmt.Printf("[AUTH] ⚠️ Purge de la blacklist échouée: %v\n", err)
						}
						cancel()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

// RegisterAuthRoutes configure les routes d'authentification
func RegisterAuthRoutes(
	router *gin.Engine,
	controller *controllers.AuthController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.Refresh)
		authGroup.POST("/logout", controller.Logout)

		authGroup.GET("/me", append(authMiddleware.Protected(stack), controller.Me)...)
	}
}
