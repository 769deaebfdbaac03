package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hopital-core/internal/shared/policy"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(identite *policy.Identite, req policy.Requirement) *httptest.ResponseRecorder {
	r := gin.New()
	m := NewRoleMiddleware()

	r.GET("/protected", func(c *gin.Context) {
		if identite != nil {
			c.Set("identite", *identite)
		}
		c.Next()
	}, m.Require(req), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, httpReq)
	return w
}

func TestRequire_SansSession(t *testing.T) {
	w := performRequest(nil, policy.RequireRoles(policy.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequire_RoleAutorise(t *testing.T) {
	identite := policy.Identite{ID: uuid.New(), Role: policy.RoleAdmin}
	w := performRequest(&identite, policy.RequireRoles(policy.RoleAdmin, policy.RoleAdministratif))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequire_RoleRefuse(t *testing.T) {
	identite := policy.Identite{ID: uuid.New(), Role: policy.RolePatient}
	w := performRequest(&identite, policy.RequireRoles(policy.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, w.Code)
	// Message générique, aucun détail de ressource
	assert.Contains(t, w.Body.String(), "ACCESS_DENIED")
	assert.NotContains(t, w.Body.String(), "resource")
}

func TestRequire_MetierExige(t *testing.T) {
	medecin := policy.MetierMedecin
	avecProfil := policy.Identite{ID: uuid.New(), Role: policy.RoleTechnicien, RoleMetier: &medecin}
	sansProfil := policy.Identite{ID: uuid.New(), Role: policy.RoleTechnicien}

	assert.Equal(t, http.StatusOK, performRequest(&avecProfil, policy.RequireMetiers(policy.MetierMedecin)).Code)
	assert.Equal(t, http.StatusForbidden, performRequest(&sansProfil, policy.RequireMetiers(policy.MetierMedecin)).Code)
}
