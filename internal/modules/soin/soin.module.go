package soin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/soin/controllers"
	"hopital-core/internal/modules/soin/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	"hopital-core/internal/shared/policy"
)

// Module soin : soins infirmiers
var Module = fx.Options(
	fx.Provide(services.NewSoinService),
	fx.Provide(controllers.NewSoinController),

	fx.Invoke(RegisterSoinRoutes),
)

// RegisterSoinRoutes configure les routes des soins infirmiers.
// Les mutations exigent un infirmier.
func RegisterSoinRoutes(
	router *gin.Engine,
	controller *controllers.SoinController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	infirmier := authMiddleware.RequireMetiers(stack, policy.MetierInfirmier)
	lecture := authMiddleware.Protected(stack)

	group := router.Group("/api/v1/soins")
	{
		group.POST("", append(infirmier, controller.Create)...)
		group.GET("", append(lecture, controller.Search)...)
		group.GET("/:id", append(lecture, controller.GetByID)...)
		group.PUT("/:id", append(infirmier, controller.Replace)...)
		group.PATCH("/:id", append(infirmier, controller.Patch)...)
		group.DELETE("/:id", append(infirmier, controller.Delete)...)
	}
}
