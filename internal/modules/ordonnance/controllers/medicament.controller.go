package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hopital-core/internal/modules/ordonnance/dto"
	"hopital-core/internal/modules/ordonnance/services"
)

type MedicamentController struct {
	service   *services.MedicamentService
	validator *validator.Validate
}

func NewMedicamentController(service *services.MedicamentService) *MedicamentController {
	return &MedicamentController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/medicaments
func (c *MedicamentController) Create(ctx *gin.Context) {
	var req dto.CreateMedicamentRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	medicament, err := c.service.Create(ctx.Request.Context(), req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    medicament,
	})
}

// GetByID - GET /api/v1/medicaments/:id
func (c *MedicamentController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	medicament, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    medicament,
	})
}

// Search - GET /api/v1/medicaments?ordonnance_id=&soin_id=&nom=
func (c *MedicamentController) Search(ctx *gin.Context) {
	medicaments, err := c.service.Search(ctx.Request.Context(), ctx.GetQuery)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    medicaments,
		"meta": gin.H{
			"total": len(medicaments),
		},
	})
}

// Patch - PATCH /api/v1/medicaments/:id
func (c *MedicamentController) Patch(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchMedicamentRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	medicament, err := c.service.Patch(ctx.Request.Context(), id, req, acteurID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    medicament,
	})
}

// Delete - DELETE /api/v1/medicaments/:id
func (c *MedicamentController) Delete(ctx *gin.Context) {
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
		"message": "Médicament supprimé",
	})
}
