package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hopital-core/internal/modules/soin/dto"
	"hopital-core/internal/modules/soin/services"
	"hopital-core/internal/shared/apperror"
	authMiddleware "hopital-core/internal/shared/middleware/auth"
)

type SoinController struct {
	service   *services.SoinService
	validator *validator.Validate
}

func NewSoinController(service *services.SoinService) *SoinController {
	return &SoinController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/soins
func (c *SoinController) Create(ctx *gin.Context) {
	var req dto.CreateSoinRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	soin, err := c.service.Create(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    soin,
	})
}

// GetByID - GET /api/v1/soins/:id
func (c *SoinController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	soin, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    soin,
	})
}

// Search - GET /api/v1/soins?dossier_id=&infirmier_id=&description=&date_debut=&date_fin=
func (c *SoinController) Search(ctx *gin.Context) {
	soins, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    soins,
		"meta": gin.H{
			"total": len(soins),
		},
	})
}

// Replace - PUT /api/v1/soins/:id
func (c *SoinController) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceSoinRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	soin, err := c.service.Replace(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    soin,
	})
}

// Patch - PATCH /api/v1/soins/:id
func (c *SoinController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchSoinRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	soin, err := c.service.Patch(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    soin,
	})
}

// Delete - DELETE /api/v1/soins/:id
func (c *SoinController) Delete(ctx *gin.Context) {
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
		"message": "Soin supprimé",
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
