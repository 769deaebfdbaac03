package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hopital-core/internal/modules/audit/services"
)

const (
	limiteParDefaut = 20
	limiteMax       = 100
)

// AuditController expose la lecture du journal des mutations cliniques
type AuditController struct {
	service *services.AuditService
}

func NewAuditController(service *services.AuditService) *AuditController {
	return &AuditController{service: service}
}

// RecentForRessource - GET /api/v1/audit/:ressource/:id?limit=
func (c *AuditController) RecentForRessource(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant invalide",
			"details": map[string]interface{}{
				"code": "INVALID_ID",
			},
		})
		return
	}

	limit := int64(limiteParDefaut)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > limiteMax {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Limite invalide",
				"details": map[string]interface{}{
					"code":   "VALIDATION_ERROR",
					"champs": map[string]string{"limit": "entier entre 1 et 100"},
				},
			})
			return
		}
		limit = parsed
	}

	events, err := c.service.RecentForRessource(ctx.Request.Context(), ctx.Param("ressource"), id, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Lecture du journal échouée",
			"details": map[string]interface{}{
				"code": "INTERNAL_ERROR",
			},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"meta": gin.H{
			"total": len(events),
		},
	})
}
