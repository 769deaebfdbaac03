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

// ConsultationService gère les consultations d'un dossier patient
type ConsultationService struct {
	db         *postgres.Client
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewConsultationService(db *postgres.Client, audit *auditServices.AuditService) *ConsultationService {
	return &ConsultationService{
		db:    db,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "medecin_id", Column: "medecin_id", Kind: filters.Equals},
			filters.Spec{Param: "motif", Column: "motif", Kind: filters.Contains},
			filters.Spec{Param: "date_debut", Column: "date_consultation", Kind: filters.DateFrom},
			filters.Spec{Param: "date_fin", Column: "date_consultation", Kind: filters.DateTo},
		),
	}
}

// Create enregistre une consultation après validation des références
func (s *ConsultationService) Create(ctx context.Context, req dto.CreateConsultationRequest, acteurID uuid.UUID) (*dto.ConsultationResponse, error) {
	if err := s.checkReferences(ctx, req.DossierID, req.MedecinID); err != nil {
		return nil, err
	}

	consultation := dto.ConsultationResponse{
		ID:               uuid.New().String(),
		DossierID:        req.DossierID,
		MedecinID:        &req.MedecinID,
		DateConsultation: req.DateConsultation,
		Motif:            req.Motif,
		Diagnostic:       req.Diagnostic,
		Notes:            req.Notes,
	}

	err := s.db.QueryRow(ctx, queries.ConsultationQueries.Insert,
		consultation.ID, req.DossierID, req.MedecinID, req.DateConsultation,
		req.Motif, req.Diagnostic, req.Notes,
	).Scan(&consultation.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création de la consultation échouée: %w", err)
	}

	s.recordAudit("consultation.creation", consultation.ID, acteurID, map[string]interface{}{
		"dossier_id": req.DossierID,
		"motif":      req.Motif,
	})

	return &consultation, nil
}

// GetByID retourne une consultation
func (s *ConsultationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ConsultationResponse, error) {
	consultation, err := scanConsultation(s.db.QueryRow(ctx, queries.ConsultationQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("consultation", "Consultation introuvable")
		}
		return nil, fmt.Errorf("lecture de la consultation échouée: %w", err)
	}
	return consultation, nil
}

// Search filtre les consultations par dossier, médecin, motif et dates
func (s *ConsultationService) Search(ctx context.Context, get filters.Getter) ([]dto.ConsultationResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.ConsultationQueries.SearchBase + fragment + " ORDER BY date_consultation DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des consultations échouée: %w", err)
	}
	defer rows.Close()

	consultations := make([]dto.ConsultationResponse, 0)
	for rows.Next() {
		consultation, err := scanConsultation(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'une consultation échouée: %w", err)
		}
		consultations = append(consultations, *consultation)
	}

	return consultations, rows.Err()
}

// Replace remplace tous les champs cliniques d'une consultation
func (s *ConsultationService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceConsultationRequest, acteurID uuid.UUID) (*dto.ConsultationResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.ConsultationQueries.Replace,
		id, req.DateConsultation, req.Motif, req.Diagnostic, req.Notes,
	); err != nil {
		return nil, fmt.Errorf("remplacement de la consultation échoué: %w", err)
	}

	s.recordAudit("consultation.remplacement", id.String(), acteurID, map[string]interface{}{
		"motif": req.Motif,
	})

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *ConsultationService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchConsultationRequest, acteurID uuid.UUID) (*dto.ConsultationResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.DateConsultation == nil && req.Motif == nil && req.Diagnostic == nil && req.Notes == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.ConsultationQueries.Patch,
		id, req.DateConsultation, req.Motif, req.Diagnostic, req.Notes,
	); err != nil {
		return nil, fmt.Errorf("mise à jour de la consultation échouée: %w", err)
	}

	s.recordAudit("consultation.modification", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime une consultation, 404 si elle n'existe pas
func (s *ConsultationService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.ConsultationQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression de la consultation échouée: %w", err)
	}

	s.recordAudit("consultation.suppression", id.String(), acteurID, nil)
	return nil
}

func (s *ConsultationService) checkReferences(ctx context.Context, dossierID, medecinID string) error {
	var dossierExists bool
	if err := s.db.QueryRow(ctx, queries.ConsultationQueries.ExistsDossier, dossierID).Scan(&dossierExists); err != nil {
		return fmt.Errorf("vérification du dossier échouée: %w", err)
	}
	if !dossierExists {
		return apperror.Conflict("Dossier introuvable", map[string]interface{}{
			"dossier_id": dossierID,
		})
	}

	var medecinExists bool
	if err := s.db.QueryRow(ctx, queries.ConsultationQueries.ExistsMedecin, medecinID).Scan(&medecinExists); err != nil {
		return fmt.Errorf("vérification du médecin échouée: %w", err)
	}
	if !medecinExists {
		return apperror.Conflict("Médecin introuvable", map[string]interface{}{
			"medecin_id": medecinID,
		})
	}

	return nil
}

func (s *ConsultationService) recordAudit(action, ressourceID string, acteurID uuid.UUID, donnees map[string]interface{}) {
	id, err := uuid.Parse(ressourceID)
	if err != nil {
		return
	}
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "consultation",
		RessourceID:   id,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanConsultation(row pgx.Row) (*dto.ConsultationResponse, error) {
	var c dto.ConsultationResponse
	var medecinID *uuid.UUID

	err := row.Scan(
		&c.ID, &c.DossierID, &medecinID, &c.DateConsultation,
		&c.Motif, &c.Diagnostic, &c.Notes, &c.CreatedAt,
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
