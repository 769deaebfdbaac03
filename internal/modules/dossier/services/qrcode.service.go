package services

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"hopital-core/internal/infrastructure/storage"
)

const qrCodeSizePx = 256

// QRCodeService génère l'artefact QR d'un dossier à partir de l'identité
// du patient et l'écrit dans le stockage média
type QRCodeService struct {
	media *storage.MediaStore
}

func NewQRCodeService(media *storage.MediaStore) *QRCodeService {
	return &QRCodeService{media: media}
}

// Generate encode (nom affiché, patient id) en PNG et retourne le chemin
// relatif du fichier écrit
func (s *QRCodeService) Generate(dossierID, patientID, displayName string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"patient":    displayName,
		"patient_id": patientID,
	})
	if err != nil {
		return "", fmt.Errorf("encodage du contenu QR échoué: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrCodeSizePx)
	if err != nil {
		return "", fmt.Errorf("génération du QR code échouée: %w", err)
	}

	relPath, err := s.media.WriteQRCode(dossierID, png)
	if err != nil {
		return "", fmt.Errorf("écriture du QR code échouée: %w", err)
	}

	return relPath, nil
}

// Remove supprime l'artefact QR, sans erreur s'il n'existe plus
func (s *QRCodeService) Remove(relPath string) error {
	return s.media.Remove(relPath)
}

// RelPath retourne le chemin relatif de l'artefact QR d'un dossier
func (s *QRCodeService) RelPath(dossierID string) string {
	return s.media.QRCodePath(dossierID)
}

// URL retourne l'URL publique d'un artefact QR
func (s *QRCodeService) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	return s.media.URL(relPath)
}
