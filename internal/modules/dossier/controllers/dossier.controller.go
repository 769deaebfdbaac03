package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hopital-core/internal/modules/dossier/dto"
	"hopital-core/internal/modules/dossier/services"
	"hopital-core/internal/shared/apperror"
)

type DossierController struct {
	service   *services.DossierService
	validator *validator.Validate
}

func NewDossierController(service *services.DossierService) *DossierController {
	return &DossierController{
		service:   service,
		validator: validator.New(),
	}
}

// Create - POST /api/v1/dossiers
func (c *DossierController) Create(ctx *gin.Context) {
	var req dto.CreatePatientRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	dossier, err := c.service.CreatePatientWithDossier(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    dossier,
	})
}

// GetByID - GET /api/v1/dossiers/:id
func (c *DossierController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	dossier, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dossier,
	})
}

// GetByPatientNom - GET /api/v1/dossiers/recherche?patient_id=&nom=
func (c *DossierController) GetByPatientNom(ctx *gin.Context) {
	patientID, err := uuid.Parse(ctx.Query("patient_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre patient_id invalide",
			"details": map[string]interface{}{
				"code": "INVALID_ID",
			},
		})
		return
	}

	nom := ctx.Query("nom")
	if nom == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre nom requis",
			"details": map[string]interface{}{
				"code": "VALIDATION_ERROR",
			},
		})
		return
	}

	dossier, err := c.service.GetByPatientNom(ctx.Request.Context(), patientID, nom)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dossier,
	})
}

// GetByNSS - GET /api/v1/dossiers/nss?nss=
// Les messages d'erreur de ce point d'accès sont contractuels.
func (c *DossierController) GetByNSS(ctx *gin.Context) {
	dossier, err := c.service.GetByNSS(ctx.Request.Context(), ctx.Query("nss"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dossier,
	})
}

// Update - PUT /api/v1/dossiers/:id
func (c *DossierController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if !bindAndValidate(ctx, c.validator, &req) {
		return
	}

	dossier, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dossier,
	})
}

// Delete - DELETE /api/v1/dossiers/:id
func (c *DossierController) Delete(ctx *gin.Context) {
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
		"message": "Dossier supprimé",
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
