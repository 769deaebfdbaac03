package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/shared/apperror"
)

// Le NSS est contrôlé avant tout accès base : un service à vide suffit.
func TestGetByNSS_NSSManquant(t *testing.T) {
	service := &DossierService{}

	for _, nss := range []string{"", "   ", "\t"} {
		_, err := service.GetByNSS(context.Background(), nss)

		require.Error(t, err)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
		// Message contractuel attendu tel quel par les clients
		assert.Equal(t, "NSS is required.", appErr.Message)
	}
}
