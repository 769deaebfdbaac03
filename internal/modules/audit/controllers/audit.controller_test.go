package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Les paramètres sont contrôlés avant tout appel au journal.
func newTestRouter() *gin.Engine {
	controller := NewAuditController(nil)

	r := gin.New()
	r.GET("/api/v1/audit/:ressource/:id", controller.RecentForRessource)
	return r
}

func TestRecentForRessource_IdentifiantInvalide(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/audit/ordonnance/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestRecentForRessource_LimiteInvalide(t *testing.T) {
	r := newTestRouter()

	for _, limit := range []string{"0", "-3", "101", "beaucoup"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet,
			"/api/v1/audit/ordonnance/2c1f3f46-9a71-4f4e-bb2a-0d6a22f31b3c?limit="+limit, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	}
}
