package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/consultation/dto"
	"hopital-core/internal/modules/consultation/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// CertificatService gère les certificats médicaux d'un dossier
type CertificatService struct {
	db            *postgres.Client
	consultations *ConsultationService
	audit         *auditServices.AuditService
	searchSpec    *filters.Set
}

func NewCertificatService(db *postgres.Client, consultations *ConsultationService, audit *auditServices.AuditService) *CertificatService {
	return &CertificatService{
		db:            db,
		consultations: consultations,
		audit:         audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "medecin_id", Column: "medecin_id", Kind: filters.Equals},
			filters.Spec{Param: "contenu", Column: "contenu", Kind: filters.Contains},
		),
	}
}

// Create établit un certificat après validation des références
func (s *CertificatService) Create(ctx context.Context, req dto.CreateCertificatRequest, acteurID uuid.UUID) (*dto.CertificatResponse, error) {
	if err := s.consultations.checkReferences(ctx, req.DossierID, req.MedecinID); err != nil {
		return nil, err
	}

	certificat := dto.CertificatResponse{
		ID:              uuid.New().String(),
		DossierID:       req.DossierID,
		MedecinID:       &req.MedecinID,
		Contenu:         req.Contenu,
		DureeReposJours: req.DureeReposJours,
	}

	err := s.db.QueryRow(ctx, queries.CertificatQueries.Insert,
		certificat.ID, req.DossierID, req.MedecinID, req.Contenu, req.DureeReposJours,
	).Scan(&certificat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création du certificat échouée: %w", err)
	}

	s.recordAudit("certificat.creation", certificat.ID, acteurID, map[string]interface{}{
		"dossier_id": req.DossierID,
	})

	return &certificat, nil
}

// GetByID retourne un certificat
func (s *CertificatService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CertificatResponse, error) {
	certificat, err := scanCertificat(s.db.QueryRow(ctx, queries.CertificatQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("certificat", "Certificat introuvable")
		}
		return nil, fmt.Errorf("lecture du certificat échouée: %w", err)
	}
	return certificat, nil
}

// Search filtre les certificats par dossier, médecin et contenu
func (s *CertificatService) Search(ctx context.Context, get filters.Getter) ([]dto.CertificatResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.CertificatQueries.SearchBase + fragment + " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des certificats échouée: %w", err)
	}
	defer rows.Close()

	certificats := make([]dto.CertificatResponse, 0)
	for rows.Next() {
		certificat, err := scanCertificat(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un certificat échouée: %w", err)
		}
		certificats = append(certificats, *certificat)
	}

	return certificats, rows.Err()
}

// Replace remplace le contenu d'un certificat
func (s *CertificatService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceCertificatRequest, acteurID uuid.UUID) (*dto.CertificatResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.CertificatQueries.Replace,
		id, req.Contenu, req.DureeReposJours,
	); err != nil {
		return nil, fmt.Errorf("remplacement du certificat échoué: %w", err)
	}

	s.recordAudit("certificat.remplacement", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *CertificatService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchCertificatRequest, acteurID uuid.UUID) (*dto.CertificatResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Contenu == nil && req.DureeReposJours == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.CertificatQueries.Patch,
		id, req.Contenu, req.DureeReposJours,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du certificat échouée: %w", err)
	}

	s.recordAudit("certificat.modification", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime un certificat, 404 s'il n'existe pas
func (s *CertificatService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.CertificatQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression du certificat échouée: %w", err)
	}

	s.recordAudit("certificat.suppression", id.String(), acteurID, nil)
	return nil
}

func (s *CertificatService) recordAudit(action, ressourceID string, acteurID uuid.UUID, donnees map[string]interface{}) {
	id, err := uuid.Parse(ressourceID)
	if err != nil {
		return
	}
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "certificat",
		RessourceID:   id,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanCertificat(row pgx.Row) (*dto.CertificatResponse, error) {
	var c dto.CertificatResponse
	var medecinID *uuid.UUID

	err := row.Scan(
		&c.ID, &c.DossierID, &medecinID, &c.Contenu, &c.DureeReposJours, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if medecinID != nil {
		id := medecinID.String()
		c.MedecinID = &id
	}

	return &c, nil
}
