package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// La validation embarquée rejette avant tout appel au service.
func newTestRouter() *gin.Engine {
	controller := NewExamenBioController(nil)
	radio := NewExamenRadioController(nil)

	r := gin.New()
	r.POST("/api/v1/examens-biologiques", controller.Create)
	r.GET("/api/v1/examens-biologiques/:id", controller.GetByID)
	r.POST("/api/v1/examens-radiologiques/:id/images", radio.AttachImage)
	return r
}

func TestCreate_CorpsInvalide(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/examens-biologiques", strings.NewReader("{pas du json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST_FORMAT")
}

func TestCreate_ChampsManquants(t *testing.T) {
	r := newTestRouter()

	body := `{"dossier_id": "pas-un-uuid", "date_examen": "30/08/2026"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/examens-biologiques", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "champs")
}

func TestGetByID_IdentifiantInvalide(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/examens-biologiques/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestAttachImage_FichierManquant(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost,
		"/api/v1/examens-radiologiques/2c1f3f46-9a71-4f4e-bb2a-0d6a22f31b3c/images", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_REQUIRED")
}
