package dossier

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/dossier/controllers"
	"hopital-core/internal/modules/dossier/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	"hopital-core/internal/shared/policy"
)

// Module dossier : registre des dossiers patients et artefacts QR
var Module = fx.Options(
	fx.Provide(services.NewQRCodeService),
	fx.Provide(services.NewDossierService),
	fx.Provide(controllers.NewDossierController),

	fx.Invoke(RegisterDossierRoutes),
)

// RegisterDossierRoutes configure les routes du registre des dossiers
func RegisterDossierRoutes(
	router *gin.Engine,
	controller *controllers.DossierController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	group := router.Group("/api/v1/dossiers")
	{
		// Création et modification : personnel administratif ou admin
		admission := authMiddleware.RequireRoles(stack, policy.RoleAdmin, policy.RoleAdministratif)
		group.POST("", append(admission, controller.Create)...)
		group.PUT("/:id", append(admission, controller.Update)...)

		// Consultation : tout personnel authentifié
		lecture := authMiddleware.Protected(stack)
		group.GET("/recherche", append(lecture, controller.GetByPatientNom)...)
		group.GET("/nss", append(lecture, controller.GetByNSS)...)
		group.GET("/:id", append(lecture, controller.GetByID)...)

		// Suppression : admin uniquement
		group.DELETE("/:id", append(authMiddleware.RequireAdmin(stack), controller.Delete)...)
	}
}
