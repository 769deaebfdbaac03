package apperror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("dossier", "Dossier introuvable")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "dossier", err.Details["resource"])
}

func TestValidation_ChampsParChamp(t *testing.T) {
	err := Validation("Données invalides", map[string]string{"nss": "NSS is required."})

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	champs, ok := err.Details["champs"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "NSS is required.", champs["nss"])
}

func TestDenied_MessageGenerique(t *testing.T) {
	err := Denied()

	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	// Pas de fuite d'information sur la ressource
	_, hasResource := err.Details["resource"]
	assert.False(t, hasResource)
}

func TestAs_ErreurWrappee(t *testing.T) {
	base := Conflict("Référence absente", map[string]interface{}{"champ": "dossier_id"})
	wrapped := fmt.Errorf("création consultation: %w", base)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "INTEGRITY_ERROR", appErr.Code)
	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
}

func TestStatusOf_ErreurInconnue(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(fmt.Errorf("boom")))
}
