package ordonnance

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/ordonnance/controllers"
	"hopital-core/internal/modules/ordonnance/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	"hopital-core/internal/shared/policy"
)

// Module ordonnance : prescriptions, médicaments et décision de validation
var Module = fx.Options(
	fx.Provide(services.NewOrdonnanceService),
	fx.Provide(services.NewMedicamentService),
	fx.Provide(controllers.NewOrdonnanceController),
	fx.Provide(controllers.NewMedicamentController),

	fx.Invoke(RegisterOrdonnanceRoutes),
)

// RegisterOrdonnanceRoutes configure les routes des ordonnances et des
// médicaments. Les médicaments d'un soin sont gérés par les infirmiers.
func RegisterOrdonnanceRoutes(
	router *gin.Engine,
	ordonnances *controllers.OrdonnanceController,
	medicaments *controllers.MedicamentController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	medecin := authMiddleware.RequireMetiers(stack, policy.MetierMedecin)
	prescripteur := authMiddleware.RequireMetiers(stack, policy.MetierMedecin, policy.MetierInfirmier)
	lecture := authMiddleware.Protected(stack)

	ordonnanceGroup := router.Group("/api/v1/ordonnances")
	{
		ordonnanceGroup.POST("", append(medecin, ordonnances.Create)...)
		ordonnanceGroup.GET("", append(lecture, ordonnances.Search)...)
		ordonnanceGroup.GET("/:id", append(lecture, ordonnances.GetByID)...)
		ordonnanceGroup.PUT("/:id", append(medecin, ordonnances.Replace)...)
		ordonnanceGroup.PATCH("/:id", append(medecin, ordonnances.Patch)...)
		ordonnanceGroup.PATCH("/:id/validation", append(medecin, ordonnances.Validate)...)
		ordonnanceGroup.DELETE("/:id", append(medecin, ordonnances.Delete)...)
	}

	medicamentGroup := router.Group("/api/v1/medicaments")
	{
		medicamentGroup.POST("", append(prescripteur, medicaments.Create)...)
		medicamentGroup.GET("", append(lecture, medicaments.Search)...)
		medicamentGroup.GET("/:id", append(lecture, medicaments.GetByID)...)
		medicamentGroup.PATCH("/:id", append(prescripteur, medicaments.Patch)...)
		medicamentGroup.DELETE("/:id", append(prescripteur, medicaments.Delete)...)
	}
}
