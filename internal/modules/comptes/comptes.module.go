package comptes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/comptes/controllers"
	"hopital-core/internal/modules/comptes/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

// Module comptes : gestion du personnel et des profils techniques
var Module = fx.Options(
	fx.Provide(services.NewComptesService),
	fx.Provide(controllers.NewComptesController),

	fx.Invoke(RegisterComptesRoutes),
)

// RegisterComptesRoutes configure les routes des comptes (admin uniquement)
func RegisterComptesRoutes(
	router *gin.Engine,
	controller *controllers.ComptesController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	group := router.Group("/api/v1/utilisateurs")
	group.Use(authMiddleware.RequireAdmin(stack)...)
	{
		group.POST("", controller.Create)
		group.GET("", controller.Search)
		group.GET("/:id", controller.GetByID)
		group.PATCH("/:id", controller.Update)
		group.DELETE("/:id", controller.Delete)

		group.POST("/:id/profil-technique", controller.CreateProfil)
		group.PATCH("/:id/profil-technique", controller.UpdateProfil)
	}
}
