package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopital-core/internal/infrastructure/storage"
)

func newTestQRCodeService(t *testing.T) *QRCodeService {
	t.Helper()
	store, err := storage.NewMediaStore(&storage.MediaConfig{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:4000",
	})
	require.NoError(t, err)
	return NewQRCodeService(store)
}

func TestGenerate_EcritUnPNG(t *testing.T) {
	service := newTestQRCodeService(t)

	relPath, err := service.Generate("dossier-1", "patient-1", "DUPONT Marie")
	require.NoError(t, err)
	assert.Equal(t, service.RelPath("dossier-1"), relPath)

	content, err := os.ReadFile(filepath.Join(service.media.Root(), relPath))
	require.NoError(t, err)
	// Signature PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content[:4])
}

func TestGenerate_Regeneration(t *testing.T) {
	service := newTestQRCodeService(t)

	relPath, err := service.Generate("dossier-1", "patient-1", "DUPONT Marie")
	require.NoError(t, err)

	// Un changement d'identité produit un nouveau contenu au même chemin
	relPath2, err := service.Generate("dossier-1", "patient-1", "MARTIN Marie")
	require.NoError(t, err)
	assert.Equal(t, relPath, relPath2)
}

func TestRemove_PuisURLVide(t *testing.T) {
	service := newTestQRCodeService(t)

	relPath, err := service.Generate("dossier-2", "patient-2", "DURAND Paul")
	require.NoError(t, err)

	require.NoError(t, service.Remove(relPath))
	// Idempotent
	require.NoError(t, service.Remove(relPath))

	assert.Empty(t, service.URL(""))
	assert.Contains(t, service.URL(relPath), "/media/")
}
