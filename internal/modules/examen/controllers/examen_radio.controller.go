package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hopital-core/internal/modules/examen/dto"
	"hopital-core/internal/modules/examen/services"
)

type ExamenRadioController struct {
	service   *services.ExamenRadioService
	validator *validator.Validate
}

func NewExamenRadioController(service *services.ExamenRadioService) *ExamenRadioController {
	return &ExamenRadioController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/examens-radiologiques
func (c *ExamenRadioController) Create(ctx *gin.Context) {
	var req dto.CreateExamenRadioRequest
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

// GetByID - GET /api/v1/examens-radiologiques/:id
func (c *ExamenRadioController) GetByID(ctx *gin.Context) {
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

// Search - GET /api/v1/examens-radiologiques?dossier_id=&radiologue_id=&type_examen=&statut=&date_debut=&date_fin=
func (c *ExamenRadioController) Search(ctx *gin.Context) {
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

// Replace - PUT /api/v1/examens-radiologiques/:id
func (c *ExamenRadioController) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceExamenRadioRequest
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

// Patch - PATCH /api/v1/examens-radiologiques/:id
func (c *ExamenRadioController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchExamenRadioRequest
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

// Delete - DELETE /api/v1/examens-radiologiques/:id
func (c *ExamenRadioController) Delete(ctx *gin.Context) {
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
		"message": "Examen radiologique supprimé",
	})
}

// AttachImage - POST /api/v1/examens-radiologiques/:id/images (multipart, champ "fichier")
func (c *ExamenRadioController) AttachImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("fichier")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Fichier image requis (champ 'fichier')",
			"details": map[string]interface{}{
				"code": "FILE_REQUIRED",
			},
		})
		return
	}

	image, err := c.service.AttachImage(ctx.Request.Context(), id, file, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    image,
	})
}

// GetImage - GET /api/v1/images-radiologiques/:id
func (c *ExamenRadioController) GetImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	image, err := c.service.GetImage(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    image,
	})
}

// DeleteImage - DELETE /api/v1/images-radiologiques/:id
func (c *ExamenRadioController) DeleteImage(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteImage(ctx.Request.Context(), id, acteurID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image supprimée",
	})
}
