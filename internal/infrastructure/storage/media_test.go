package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *MediaStore {
	t.Helper()
	store, err := NewMediaStore(&MediaConfig{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:4000",
	})
	require.NoError(t, err)
	return store
}

func TestWriteQRCode_EcritEtEcrase(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.WriteQRCode("abc-123", []byte("png-v1"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("qrcodes", "dossier_abc-123.png"), relPath)

	// La régénération écrase l'ancien artefact
	relPath2, err := store.WriteQRCode("abc-123", []byte("png-v2"))
	require.NoError(t, err)
	assert.Equal(t, relPath, relPath2)

	content, err := os.ReadFile(filepath.Join(store.Root(), relPath))
	require.NoError(t, err)
	assert.Equal(t, "png-v2", string(content))
}

func TestRemove_Idempotent(t *testing.T) {
	store := newTestStore(t)

	relPath, err := store.WriteQRCode("xyz", []byte("png"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(relPath))
	// Déjà supprimé : pas d'erreur
	require.NoError(t, store.Remove(relPath))
	require.NoError(t, store.Remove(""))
}

func TestURL(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t,
		"http://localhost:4000/media/qrcodes/dossier_1.png",
		store.URL(filepath.Join("qrcodes", "dossier_1.png")),
	)
	assert.Empty(t, store.URL(""))
}
