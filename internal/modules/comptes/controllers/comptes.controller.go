package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hopital-core/internal/modules/comptes/dto"
	"hopital-core/internal/modules/comptes/services"
	"hopital-core/internal/shared/apperror"
)

type ComptesController struct {
	service   *services.ComptesService
	validator *validator.Validate
}

func NewComptesController(service *services.ComptesService) *ComptesController {
	return &ComptesController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/utilisateurs
func (c *ComptesController) Create(ctx *gin.Context) {
	var req dto.CreateUtilisateurRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	utilisateur, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    utilisateur,
	})
}

// GetByID - GET /api/v1/utilisateurs/:id
func (c *ComptesController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	utilisateur, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    utilisateur,
	})
}

// Search - GET /api/v1/utilisateurs?email=&nom=&role=&statut=
func (c *ComptesController) Search(ctx *gin.Context) {
	utilisateurs, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    utilisateurs,
		"meta": gin.H{
			"total": len(utilisateurs),
		},
	})
}

// Update - PATCH /api/v1/utilisateurs/:id
func (c *ComptesController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUtilisateurRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	utilisateur, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    utilisateur,
	})
}

// Delete - DELETE /api/v1/utilisateurs/:id
func (c *ComptesController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Compte supprimé",
	})
}

// CreateProfil - POST /api/v1/utilisateurs/:id/profil-technique
func (c *ComptesController) CreateProfil(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.CreateProfilTechniqueRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	utilisateur, err := c.service.CreateProfil(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    utilisateur,
	})
}

// UpdateProfil - PATCH /api/v1/utilisateurs/:id/profil-technique
func (c *ComptesController) UpdateProfil(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfilTechniqueRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	utilisateur, err := c.service.UpdateProfil(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    utilisateur,
	})
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
