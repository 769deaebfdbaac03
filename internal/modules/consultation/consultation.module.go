package consultation

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/consultation/controllers"
	"hopital-core/internal/modules/consultation/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	"hopital-core/internal/shared/policy"
)

// Module consultation : consultations et certificats médicaux
var Module = fx.Options(
	fx.Provide(services.NewConsultationService),
	fx.Provide(services.NewCertificatService),
	fx.Provide(controllers.NewConsultationController),
	fx.Provide(controllers.NewCertificatController),

	fx.Invoke(RegisterConsultationRoutes),
)

// RegisterConsultationRoutes configure les routes des consultations
// et des certificats. Les mutations exigent un médecin.
func RegisterConsultationRoutes(
	router *gin.Engine,
	consultations *controllers.ConsultationController,
	certificats *controllers.CertificatController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	medecin := authMiddleware.RequireMetiers(stack, policy.MetierMedecin)
	lecture := authMiddleware.Protected(stack)

	consultationGroup := router.Group("/api/v1/consultations")
	{
		consultationGroup.POST("", append(medecin, consultations.Create)...)
		consultationGroup.GET("", append(lecture, consultations.Search)...)
		consultationGroup.GET("/:id", append(lecture, consultations.GetByID)...)
		consultationGroup.PUT("/:id", append(medecin, consultations.Replace)...)
		consultationGroup.PATCH("/:id", append(medecin, consultations.Patch)...)
		consultationGroup.DELETE("/:id", append(medecin, consultations.Delete)...)
	}

	certificatGroup := router.Group("/api/v1/certificats")
	{
		certificatGroup.POST("", append(medecin, certificats.Create)...)
		certificatGroup.GET("", append(lecture, certificats.Search)...)
		certificatGroup.GET("/:id", append(lecture, certificats.GetByID)...)
		certificatGroup.PUT("/:id", append(medecin, certificats.Replace)...)
		certificatGroup.PATCH("/:id", append(medecin, certificats.Patch)...)
		certificatGroup.DELETE("/:id", append(medecin, certificats.Delete)...)
	}
}
