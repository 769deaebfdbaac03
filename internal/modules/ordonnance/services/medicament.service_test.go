package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/modules/ordonnance/dto"
	"hopital-core/internal/shared/apperror"
)

func strPtr(s string) *string { return &s }

// Le rattachement est validé avant tout accès base : un service à vide suffit.
func TestCreateMedicament_RattachementExclusif(t *testing.T) {
	service := &MedicamentService{}
	acteur := uuid.New()

	cas := []struct {
		nom string
		req dto.CreateMedicamentRequest
	}{
		{
			nom: "aucun rattachement",
			req: dto.CreateMedicamentRequest{Nom: "Paracétamol", Dosage: "500mg x3/j"},
		},
		{
			nom: "rattachements vides",
			req: dto.CreateMedicamentRequest{
				Nom: "Paracétamol", Dosage: "500mg x3/j",
				OrdonnanceID: strPtr(""), SoinID: strPtr("  "),
			},
		},
		{
			nom: "double rattachement",
			req: dto.CreateMedicamentRequest{
				Nom: "Paracétamol", Dosage: "500mg x3/j",
				OrdonnanceID: strPtr(uuid.NewString()), SoinID: strPtr(uuid.NewString()),
			},
		},
	}

	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			_, err := service.Create(context.Background(), c.req, acteur)

			require.Error(t, err)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, 400, appErr.StatusCode)
		})
	}
}
