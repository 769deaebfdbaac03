package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/storage"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/examen/dto"
	"hopital-core/internal/modules/examen/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// ExamenRadioService gère les examens radiologiques et leurs images
type ExamenRadioService struct {
	db         *postgres.Client
	media      *storage.MediaStore
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewExamenRadioService(db *postgres.Client, media *storage.MediaStore, audit *auditServices.AuditService) *ExamenRadioService {
	return &ExamenRadioService{
		db:    db,
		media: media,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "radiologue_id", Column: "radiologue_id", Kind: filters.Equals},
			filters.Spec{Param: "type_examen", Column: "type_examen", Kind: filters.Contains},
			filters.Spec{Param: "statut", Column: "statut", Kind: filters.Equals},
			filters.Spec{Param: "date_debut", Column: "date_examen", Kind: filters.DateFrom},
			filters.Spec{Param: "date_fin", Column: "date_examen", Kind: filters.DateTo},
		),
	}
}

// Create prescrit un examen radiologique après validation des références
func (s *ExamenRadioService) Create(ctx context.Context, req dto.CreateExamenRadioRequest, acteurID uuid.UUID) (*dto.ExamenRadioResponse, error) {
	if err := s.checkReferences(ctx, req.DossierID, req.RadiologueID); err != nil {
		return nil, err
	}

	id := uuid.New()
	var createdAt time.Time
	err := s.db.QueryRow(ctx, queries.ExamenRadioQueries.Insert,
		id, req.DossierID, req.RadiologueID, req.TypeExamen, req.DateExamen,
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("création de l'examen radiologique échouée: %w", err)
	}

	s.recordAudit("examen_radiologique.creation", id, acteurID, map[string]interface{}{
		"dossier_id":  req.DossierID,
		"type_examen": req.TypeExamen,
	})

	return s.GetByID(ctx, id)
}

// GetByID retourne un examen radiologique avec ses images
func (s *ExamenRadioService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ExamenRadioResponse, error) {
	examen, err := scanExamenRadio(s.db.QueryRow(ctx, queries.ExamenRadioQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("examen_radiologique", "Examen radiologique introuvable")
		}
		return nil, fmt.Errorf("lecture de l'examen radiologique échouée: %w", err)
	}

	images, err := s.imagesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	examen.Images = images

	return examen, nil
}

// Search filtre les examens radiologiques, sans charger les images
func (s *ExamenRadioService) Search(ctx context.Context, get filters.Getter) ([]dto.ExamenRadioResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.ExamenRadioQueries.SearchBase + fragment + " ORDER BY date_examen DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des examens radiologiques échouée: %w", err)
	}
	defer rows.Close()

	examens := make([]dto.ExamenRadioResponse, 0)
	for rows.Next() {
		examen, err := scanExamenRadio(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un examen radiologique échouée: %w", err)
		}
		examen.Images = []dto.ImageResponse{}
		examens = append(examens, *examen)
	}

	return examens, rows.Err()
}

// Replace remplace tous les champs de l'examen
func (s *ExamenRadioService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceExamenRadioRequest, acteurID uuid.UUID) (*dto.ExamenRadioResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.ExamenRadioQueries.Replace,
		id, req.TypeExamen, req.DateExamen, req.Statut,
	); err != nil {
		return nil, fmt.Errorf("remplacement de l'examen radiologique échoué: %w", err)
	}

	s.recordAudit("examen_radiologique.remplacement", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *ExamenRadioService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchExamenRadioRequest, acteurID uuid.UUID) (*dto.ExamenRadioResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.TypeExamen == nil && req.DateExamen == nil && req.Statut == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.ExamenRadioQueries.Patch,
		id, req.TypeExamen, req.DateExamen, req.Statut,
	); err != nil {
		return nil, fmt.Errorf("mise à jour de l'examen radiologique échouée: %w", err)
	}

	s.recordAudit("examen_radiologique.modification", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime un examen radiologique et ses images
func (s *ExamenRadioService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.ExamenRadioQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression de l'examen radiologique échouée: %w", err)
	}

	s.recordAudit("examen_radiologique.suppression", id, acteurID, nil)
	return nil
}

// AttachImage stocke une image uploadée et la référence sur l'examen.
// Le radiologue agissant est résolu depuis son profil technique.
func (s *ExamenRadioService) AttachImage(ctx context.Context, examenID uuid.UUID, file *multipart.FileHeader, acteurID uuid.UUID) (*dto.ImageResponse, error) {
	var examenExists bool
	if err := s.db.QueryRow(ctx, queries.ImageQueries.ExistsExamen, examenID).Scan(&examenExists); err != nil {
		return nil, fmt.Errorf("vérification de l'examen échouée: %w", err)
	}
	if !examenExists {
		return nil, apperror.NotFound("examen_radiologique", "Examen radiologique introuvable")
	}

	var radiologueID *uuid.UUID
	var profilID uuid.UUID
	err := s.db.QueryRow(ctx, queries.ImageQueries.ProfilIDByUserID, acteurID).Scan(&profilID)
	if err == nil {
		radiologueID = &profilID
	} else if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("résolution du profil radiologue échouée: %w", err)
	}

	imageID := uuid.New()
	relPath, err := s.media.SaveRadiologyImage(imageID.String(), file)
	if err != nil {
		return nil, apperror.Validation("Format d'image non supporté", map[string]string{
			"fichier": file.Filename,
		})
	}

	image := dto.ImageResponse{
		ID:                   imageID.String(),
		ExamenRadiologiqueID: examenID.String(),
		FichierURL:           s.media.URL(relPath),
	}
	if radiologueID != nil {
		id := radiologueID.String()
		image.RadiologueID = &id
	}

	err = s.db.QueryRow(ctx, queries.ImageQueries.Insert,
		imageID, examenID, radiologueID, relPath,
	).Scan(&image.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("référencement de l'image échoué: %w", err)
	}

	s.recordAuditImage("image_radiologique.creation", imageID, acteurID, map[string]interface{}{
		"examen_radiologique_id": examenID.String(),
	})

	return &image, nil
}

func (s *ExamenRadioService) GetImage(ctx context.Context, id uuid.UUID) (*dto.ImageResponse, error) {
	row := s.db.QueryRow(ctx, queries.ImageQueries.GetByID, id)
	image, err := scanImage(row, s.media)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("image_radiologique", "Image introuvable")
		}
		return nil, fmt.Errorf("lecture de l'image échouée: %w", err)
	}
	return image, nil
}

// DeleteImage supprime la référence et le fichier d'une image
func (s *ExamenRadioService) DeleteImage(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	var fichierPath string
	err := s.db.QueryRow(ctx, queries.ImageQueries.GetFichierPath, id).Scan(&fichierPath)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperror.NotFound("image_radiologique", "Image introuvable")
		}
		return fmt.Errorf("lecture de l'image échouée: %w", err)
	}

	if err := s.db.Exec(ctx, queries.ImageQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression de l'image échouée: %w", err)
	}

	if err := s.media.Remove(fichierPath); err != nil {
		fmt.Printf("[EXAMEN] ⚠️ Suppression du fichier image %s échouée: %v\n", id, err)
	}

	s.recordAuditImage("image_radiologique.suppression", id, acteurID, nil)
	return nil
}

func (s *ExamenRadioService) imagesOf(ctx context.Context, examenID uuid.UUID) ([]dto.ImageResponse, error) {
	rows, err := s.db.Query(ctx, queries.ExamenRadioQueries.ImagesByID, examenID)
	if err != nil {
		return nil, fmt.Errorf("lecture des images échouée: %w", err)
	}
	defer rows.Close()

	images := make([]dto.ImageResponse, 0)
	for rows.Next() {
		image, err := scanImage(rows, s.media)
		if err != nil {
			return nil, fmt.Errorf("lecture d'une image échouée: %w", err)
		}
		images = append(images, *image)
	}

	return images, rows.Err()
}

func (s *ExamenRadioService) checkReferences(ctx context.Context, dossierID, radiologueID string) error {
	var dossierExists bool
	if err := s.db.QueryRow(ctx, queries.ExamenRadioQueries.ExistsDossier, dossierID).Scan(&dossierExists); err != nil {
		return fmt.Errorf("vérification du dossier échouée: %w", err)
	}
	if !dossierExists {
		return apperror.Conflict("Dossier introuvable", map[string]interface{}{
			"dossier_id": dossierID,
		})
	}

	var radiologueExists bool
	if err := s.db.QueryRow(ctx, queries.ExamenRadioQueries.ExistsRadiologue, radiologueID).Scan(&radiologueExists); err != nil {
		return fmt.Errorf("vérification du radiologue échouée: %w", err)
	}
	if !radiologueExists {
		return apperror.Conflict("Radiologue introuvable", map[string]interface{}{
			"radiologue_id": radiologueID,
		})
	}

	return nil
}

func (s *ExamenRadioService) recordAudit(action string, ressourceID uuid.UUID, acteurID uuid.UUID, donnees map[string]interface{}) {
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "examen_radiologique",
		RessourceID:   ressourceID,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func (s *ExamenRadioService) recordAuditImage(action string, ressourceID uuid.UUID, acteurID uuid.UUID, donnees map[string]interface{}) {
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "image_radiologique",
		RessourceID:   ressourceID,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanExamenRadio(row pgx.Row) (*dto.ExamenRadioResponse, error) {
	var e dto.ExamenRadioResponse
	var radiologueID *uuid.UUID

	err := row.Scan(
		&e.ID, &e.DossierID, &radiologueID, &e.TypeExamen,
		&e.DateExamen, &e.Statut, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if radiologueID != nil {
		id := radiologueID.String()
		e.RadiologueID = &id
	}

	return &e, nil
}

func scanImage(row pgx.Row, media *storage.MediaStore) (*dto.ImageResponse, error) {
	var i dto.ImageResponse
	var radiologueID *uuid.UUID
	var fichierPath string

	err := row.Scan(&i.ID, &i.ExamenRadiologiqueID, &radiologueID, &fichierPath, &i.CreatedAt)
	if err != nil {
		return nil, err
	}

	if radiologueID != nil {
		id := radiologueID.String()
		i.RadiologueID = &id
	}
	i.FichierURL = media.URL(fichierPath)

	return &i, nil
}
