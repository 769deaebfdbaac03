package examen

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"hopital-core/internal/modules/examen/controllers"
	"hopital-core/internal/modules/examen/services"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
	"hopital-core/internal/shared/policy"
)

// Module examen : examens biologiques (+ résultats) et radiologiques (+ images)
var Module = fx.Options(
	fx.Provide(services.NewExamenBioService),
	fx.Provide(services.NewExamenRadioService),
	fx.Provide(controllers.NewExamenBioController),
	fx.Provide(controllers.NewExamenRadioController),

	fx.Invoke(RegisterExamenRoutes),
)

// RegisterExamenRoutes configure les routes des examens. Les mutations
// biologiques exigent un laborantin, les radiologiques un radiologue.
func RegisterExamenRoutes(
	router *gin.Engine,
	bio *controllers.ExamenBioController,
	radio *controllers.ExamenRadioController,
	stack *authMiddleware.AuthMiddlewareStack,
) {
	laborantin := authMiddleware.RequireMetiers(stack, policy.MetierLaborantin)
	radiologue := authMiddleware.RequireMetiers(stack, policy.MetierRadiologue)
	lecture := authMiddleware.Protected(stack)

	bioGroup := router.Group("/api/v1/examens-biologiques")
	{
		bioGroup.POST("", append(laborantin, bio.Create)...)
		bioGroup.GET("", append(lecture, bio.Search)...)
		bioGroup.GET("/:id", append(lecture, bio.GetByID)...)
		bioGroup.PUT("/:id", append(laborantin, bio.Replace)...)
		bioGroup.PATCH("/:id", append(laborantin, bio.Patch)...)
		bioGroup.DELETE("/:id", append(laborantin, bio.Delete)...)
	}

	resultatGroup := router.Group("/api/v1/resultats-examens")
	{
		resultatGroup.POST("", append(laborantin, bio.CreateResultat)...)
		resultatGroup.GET("/:id", append(lecture, bio.GetResultat)...)
		resultatGroup.PATCH("/:id", append(laborantin, bio.PatchResultat)...)
		resultatGroup.DELETE("/:id", append(laborantin, bio.DeleteResultat)...)
	}

	radioGroup := router.Group("/api/v1/examens-radiologiques")
	{
		radioGroup.POST("", append(radiologue, radio.Create)...)
		radioGroup.GET("", append(lecture, radio.Search)...)
		radioGroup.GET("/:id", append(lecture, radio.GetByID)...)
		radioGroup.PUT("/:id", append(radiologue, radio.Replace)...)
		radioGroup.PATCH("/:id", append(radiologue, radio.Patch)...)
		radioGroup.DELETE("/:id", append(radiologue, radio.Delete)...)
		radioGroup.POST("/:id/images", append(radiologue, radio.AttachImage)...)
	}

	imageGroup := router.Group("/api/v1/images-radiologiques")
	{
		imageGroup.GET("/:id", append(lecture, radio.GetImage)...)
		imageGroup.DELETE("/:id", append(radiologue, radio.DeleteImage)...)
	}
}
