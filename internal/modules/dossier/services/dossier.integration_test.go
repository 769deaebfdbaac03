//go:build integration

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/app/config"
	"hopital-core/internal/infrastructure/database/bootstrap"
	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/infrastructure/storage"
	authServices "hopital-core/internal/modules/auth/services"
	comptesDto "hopital-core/internal/modules/comptes/dto"
	comptesServices "hopital-core/internal/modules/comptes/services"
	"hopital-core/internal/modules/dossier/dto"
	"hopital-core/internal/shared/apperror"
)

// Cycle de vie complet d'un dossier contre une base réelle.
// Lancement : go test -tags integration ./internal/modules/dossier/...
func newIntegrationService(t *testing.T) (*DossierService, *postgres.Client, *redis.Client) {
	t.Helper()

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	db, err := postgres.NewClient(config.NewPostgresConfig(cfg))
	if err != nil {
		t.Skipf("PostgreSQL indisponible: %v", err)
	}
	t.Cleanup(db.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		t.Skipf("PostgreSQL indisponible: %v", err)
	}
	require.NoError(t, bootstrap.NewMigrationManager(db).Run(ctx))

	keys := redis.NewKeyGenerator("test")
	redisClient, err := redis.NewClient(config.NewRedisConfig(cfg), keys)
	if err != nil {
		t.Skipf("Redis indisponible: %v", err)
	}
	t.Cleanup(redisClient.Close)

	store, err := storage.NewMediaStore(&storage.MediaConfig{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:4000",
	})
	require.NoError(t, err)

	dossiers := NewDossierService(db, postgres.NewTransactionManager(db), redisClient, NewQRCodeService(store))
	return dossiers, db, redisClient
}

func TestDossier_CycleDeVie(t *testing.T) {
	service, _, _ := newIntegrationService(t)
	ctx := context.Background()

	nss := fmt.Sprintf("1%s", uuid.NewString()[:12])
	created, err := service.CreatePatientWithDossier(ctx, dto.CreatePatientRequest{
		Email:         fmt.Sprintf("%s@test.local", uuid.NewString()[:8]),
		Password:      "motdepasse-long",
		Nom:           "DUPONT",
		Prenoms:       "Marie",
		NSS:           nss,
		DateNaissance: "1990-04-12",
		Sexe:          "F",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, nss, created.Patient.NSS)

	// Un second dossier avec le même NSS est refusé
	_, err = service.CreatePatientWithDossier(ctx, dto.CreatePatientRequest{
		Email:         fmt.Sprintf("%s@test.local", uuid.NewString()[:8]),
		Password:      "motdepasse-long",
		Nom:           "MARTIN",
		Prenoms:       "Paul",
		NSS:           nss,
		DateNaissance: "1985-01-01",
		Sexe:          "M",
	})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)

	// Recherche par NSS
	found, err := service.GetByNSS(ctx, nss)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Mise à jour sans aucun champ : le dossier reste inchangé
	unchanged, err := service.Update(ctx, uuid.MustParse(created.ID), dto.UpdatePatientRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.Patient.Nom, unchanged.Patient.Nom)
	assert.Equal(t, created.Patient.NSS, unchanged.Patient.NSS)

	// Changement de nom : l'artefact QR est régénéré
	nouveauNom := "DURAND"
	updated, err := service.Update(ctx, uuid.MustParse(created.ID), dto.UpdatePatientRequest{
		Nom: &nouveauNom,
	})
	require.NoError(t, err)
	assert.Equal(t, nouveauNom, updated.Patient.Nom)

	// Suppression puis relecture
	require.NoError(t, service.Delete(ctx, uuid.MustParse(created.ID)))

	_, err = service.GetByID(ctx, uuid.MustParse(created.ID))
	require.Error(t, err)
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)

	_, err = service.GetByNSS(ctx, nss)
	require.Error(t, err)
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "Patient not found.", appErr.Message)
}

// La suppression d'un médecin traitant laisse le dossier en place,
// la référence passe à NULL.
func TestDossier_SuppressionMedecinTraitant(t *testing.T) {
	dossiers, db, redisClient := newIntegrationService(t)
	comptes := comptesServices.NewComptesService(db, authServices.NewProfilService(db, redisClient))
	ctx := context.Background()

	medecin, err := comptes.Create(ctx, comptesDto.CreateUtilisateurRequest{
		Email:    fmt.Sprintf("%s@test.local", uuid.NewString()[:8]),
		Password: "motdepasse-long",
		Role:     "technicien",
		Nom:      "LEROY",
		Prenoms:  "Anne",
	})
	require.NoError(t, err)

	medecin, err = comptes.CreateProfil(ctx, uuid.MustParse(medecin.ID), comptesDto.CreateProfilTechniqueRequest{
		RoleMetier: "medecin",
	})
	require.NoError(t, err)
	require.NotNil(t, medecin.ProfilID)

	nss := fmt.Sprintf("2%s", uuid.NewString()[:12])
	created, err := dossiers.CreatePatientWithDossier(ctx, dto.CreatePatientRequest{
		Email:         fmt.Sprintf("%s@test.local", uuid.NewString()[:8]),
		Password:      "motdepasse-long",
		Nom:           "PETIT",
		Prenoms:       "Luc",
		NSS:           nss,
		DateNaissance: "1978-09-03",
		Sexe:          "M",
		MedecinID:     medecin.ProfilID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Patient.MedecinID)
	assert.Equal(t, *medecin.ProfilID, *created.Patient.MedecinID)

	// La suppression du médecin n'est pas bloquée par la référence
	require.NoError(t, comptes.Delete(ctx, uuid.MustParse(medecin.ID)))

	refetched, err := dossiers.GetByNSS(ctx, nss)
	require.NoError(t, err)
	assert.Nil(t, refetched.Patient.MedecinID)

	require.NoError(t, dossiers.Delete(ctx, uuid.MustParse(created.ID)))
}
