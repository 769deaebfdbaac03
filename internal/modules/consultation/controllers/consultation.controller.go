package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hopital-core/internal/modules/consultation/dto"
	"hopital-core/internal/modules/consultation/services"
	"hopital-core/internal/shared/apperror"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

type ConsultationController struct {
	service   *services.ConsultationService
	validator *validator.Validate
}

func NewConsultationController(service *services.ConsultationService) *ConsultationController {
	return &ConsultationController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/consultations
func (c *ConsultationController) Create(ctx *gin.Context) {
	var req dto.CreateConsultationRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	consultation, err := c.service.Create(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    consultation,
	})
}

// GetByID - GET /api/v1/consultations/:id
func (c *ConsultationController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	consultation, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    consultation,
	})
}

// Search - GET /api/v1/consultations?dossier_id=&medecin_id=&motif=&date_debut=&date_fin=
func (c *ConsultationController) Search(ctx *gin.Context) {
	consultations, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    consultations,
		"meta": gin.H{
			"total": len(consultations),
		},
	})
}

// Replace - PUT /api/v1/consultations/:id
func (c *ConsultationController) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceConsultationRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	consultation, err := c.service.Replace(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    consultation,
	})
}

// Patch - PATCH /api/v1/consultations/:id
func (c *ConsultationController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchConsultationRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	consultation, err := c.service.Patch(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    consultation,
	})
}

// Delete - DELETE /api/v1/consultations/:id
func (c *ConsultationController) Delete(ctx *gin.Context) {
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
		"message": "Consultation supprimée",
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
