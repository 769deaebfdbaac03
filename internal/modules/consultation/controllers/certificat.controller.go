package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hopital-core/internal/modules/consultation/dto"
	"hopital-core/internal/modules/consultation/services"
)

type CertificatController struct {
	service   *services.CertificatService
	validator *validator.Validate
}

func NewCertificatController(service *services.CertificatService) *CertificatController {
	return &CertificatController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/certificats
func (c *CertificatController) Create(ctx *gin.Context) {
	var req dto.CreateCertificatRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	certificat, err := c.service.Create(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    certificat,
	})
}

// GetByID - GET /api/v1/certificats/:id
func (c *CertificatController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	certificat, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    certificat,
	})
}

// Search - GET /api/v1/certificats?dossier_id=&medecin_id=&contenu=
func (c *CertificatController) Search(ctx *gin.Context) {
	certificats, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    certificats,
		"meta": gin.H{
			"total": len(certificats),
		},
	})
}

// Replace - PUT /api/v1/certificats/:id
func (c *CertificatController) Replace(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceCertificatRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	certificat, err := c.service.Replace(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    certificat,
	})
}

// Patch - PATCH /api/v1/certificats/:id
func (c *CertificatController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchCertificatRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	certificat, err := c.service.Patch(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    certificat,
	})
}

// Delete - DELETE /api/v1/certificats/:id
func (c *CertificatController) Delete(ctx *gin.Context) {
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
		"message": "Certificat supprimé",
	})
}
