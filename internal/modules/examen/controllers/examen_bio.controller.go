package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hopital-core/internal/modules/examen/dto"
	"hopital-core/internal/modules/examen/services"
	"hopital-core/internal/shared/apperror"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

type ExamenBioController struct {
	service   *services.ExamenBioService
	validator *validator.Validate
}

func NewExamenBioController(service *services.ExamenBioService) *ExamenBioController {
	return &ExamenBioController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/examens-biologiques
func (c *ExamenBioController) Create(ctx *gin.Context) {
	var req dto.CreateExamenBioRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	examen, err := c.service.Create(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    examen,
	})
}

// GetByID - GET /api/v1/examens-biologiques/:id
func (c *ExamenBioController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	examen, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    examen,
	})
}

// Search - GET /api/v1/examens-biologiques?dossier_id=&laborantin_id=&type_examen=&statut=&date_debut=&date_fin=
func (c *ExamenBioController) Search(ctx *gin.Context) {
	examens, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    examens,
		"meta": gin.H{
			"total": len(examens),
		},
	})
}

// Replace - PUT /api/v1/examens-biologiques/:id
func (c *ExamenBioController) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceExamenBioRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	examen, err := c.service.Replace(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    examen,
	})
}

// Patch - PATCH /api/v1/examens-biologiques/:id
func (c *ExamenBioController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchExamenBioRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	examen, err := c.service.Patch(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    examen,
	})
}

// Delete - DELETE /api/v1/examens-biologiques/:id
func (c *ExamenBioController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id, acteurID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Examen biologique supprimé",
	})
}

// CreateResultat - POST /api/v1/resultats-examens
func (c *ExamenBioController) CreateResultat(ctx *gin.Context) {
	var req dto.CreateResultatRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	resultat, err := c.service.CreateResultat(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    resultat,
	})
}

// GetResultat - GET /api/v1/resultats-examens/:id
func (c *ExamenBioController) GetResultat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	resultat, err := c.service.GetResultat(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resultat,
	})
}

// PatchResultat - PATCH /api/v1/resultats-examens/:id
func (c *ExamenBioController) PatchResultat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchResultatRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	resultat, err := c.service.PatchResultat(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resultat,
	})
}

// DeleteResultat - DELETE /api/v1/resultats-examens/:id
func (c *ExamenBioController) DeleteResultat(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteResultat(ctx.Request.Context(), id, acteurID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Résultat supprimé",
	})
}

func acteurID(ctx *gin.Context) uuid.UUID {
	if identite, ok := authMiddleware.CurrentIdentite(ctx); ok {
		return identite.ID
	}
	return uuid.Nil
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant invalide",
			"details": map[string]interface{}{
				"code": "INVALID_ID",
			},
		})
		return uuid.Nil, false
	}
	return id, true
}

func bindAndValidate(ctx *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Corps de requête invalide",
			"details": map[string]interface{}{
				"code": "INVALID_REQUEST_FORMAT",
			},
		})
		return false
	}

	if err := v.Struct(req); err != nil {
		champs := map[string]string{}
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				champs[fieldErr.Field()] = fieldErr.Tag()
			}
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Validation échouée",
			"details": map[string]interface{}{
				"code":   "VALIDATION_ERROR",
				"champs": champs,
			},
		})
		return false
	}

	return true
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
		"error": "Erreur interne",
		"details": map[string]interface{}{
			"code": "INTERNAL_ERROR",
		},
	})
}
