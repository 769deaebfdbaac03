package audit

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/audit/controllers"
	"hopital-core/internal/modules/audit/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

// Module audit : journal MongoDB des mutations cliniques
var Module = fx.Options(
	fx.Provide(services.NewAuditService),
	fx.Provide(controllers.NewAuditController),

	fx.Invoke(RegisterAuditRoutes),
)

// RegisterAuditRoutes configure la consultation du journal (admin uniquement)
func RegisterAuditRoutes(
	router *gin.Engine,
	controller *controllers.AuditController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	group := router.Group("/api/v1/audit")
	group.Use(authMiddleware.RequireAdmin(stack)...)
	{
		group.GET("/:ressource/:id", controller.RecentForRessource)
	}
}
