package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// MediaStore stocke les artefacts fichiers (QR codes des dossiers, images
// radiologiques) sous un répertoire racine et produit les URLs publiques
// correspondantes.
type MediaStore struct {
	root    string
	baseURL string
}

type MediaConfig struct {
	Root    string
	BaseURL string
}

func NewMediaStore(config *MediaConfig) (*MediaStore, error) {
	if config.Root == "" {
		return nil, fmt.Errorf("media root is empty")
	}

	for _, sub := range []string{"qrcodes", "radiologies"} {
		if err := os.MkdirAll(filepath.Join(config.Root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create media directory %s: %w", sub, err)
		}
	}

	return &MediaStore{
		root:    config.Root,
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// Root retourne le répertoire racine servi sous /media
func (s *MediaStore) Root() string {
	return s.root
}

// QRCodePath retourne le chemin relatif de l'artefact QR d'un dossier
func (s *MediaStore) QRCodePath(dossierID string) string {
	return filepath.Join("qrcodes", fmt.Sprintf("dossier_%s.png", dossierID))
}

// WriteQRCode écrit le PNG du QR code d'un dossier et retourne son chemin
// relatif. Un artefact existant pour le même dossier est écrasé.
func (s *MediaStore) WriteQRCode(dossierID string, png []byte) (string, error) {
	relPath := s.QRCodePath(dossierID)

	if err := os.WriteFile(filepath.Join(s.root, relPath), png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}

	return relPath, nil
}

// Remove supprime un artefact média (idempotent)
func (s *MediaStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}

// SaveRadiologyImage écrit une image radiologique uploadée et retourne
// son chemin relatif
func (s *MediaStore) SaveRadiologyImage(imageID string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".dcm":
	default:
		return "", fmt.Errorf("unsupported image format: %s", ext)
	}

	relPath := filepath.Join("radiologies", fmt.Sprintf("image_%s%s", imageID, ext))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return relPath, nil
}

// URL construit l'URL publique d'un chemin média relatif
func (s *MediaStore) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return s.baseURL + "/media/" + filepath.ToSlash(relPath)
}
