package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/soin/dto"
	"hopital-core/internal/modules/soin/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// SoinService gère les soins infirmiers d'un dossier patient
type SoinService struct {
	db         *postgres.Client
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewSoinService(db *postgres.Client, audit *auditServices.AuditService) *SoinService {
	return &SoinService{
		db:    db,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "infirmier_id", Column: "infirmier_id", Kind: filters.Equals},
			filters.Spec{Param: "description", Column: "description", Kind: filters.Contains},
			filters.Spec{Param: "date_debut", Column: "date_soin", Kind: filters.DateFrom},
			filters.Spec{Param: "date_fin", Column: "date_soin", Kind: filters.DateTo},
		),
	}
}

// Create enregistre un soin après validation des références
func (s *SoinService) Create(ctx context.Context, req dto.CreateSoinRequest, acteurID uuid.UUID) (*dto.SoinResponse, error) {
	var dossierExists bool
	if err := s.db.QueryRow(ctx, queries.SoinQueries.ExistsDossier, req.DossierID).Scan(&dossierExists); err != nil {
		return nil, fmt.Errorf("vérification du dossier échouée: %w", err)
	}
	if !dossierExists {
		return nil, apperror.Conflict("Dossier introuvable", map[string]interface{}{
			"dossier_id": req.DossierID,
		})
	}

	var infirmierExists bool
	if err := s.db.QueryRow(ctx, queries.SoinQueries.ExistsInfirmier, req.InfirmierID).Scan(&infirmierExists); err != nil {
		return nil, fmt.Errorf("vérification de l'infirmier échouée: %w", err)
	}
	if !infirmierExists {
		return nil, apperror.Conflict("Infirmier introuvable", map[string]interface{}{
			"infirmier_id": req.InfirmierID,
		})
	}

	soin := dto.SoinResponse{
		ID:          uuid.New().String(),
		DossierID:   req.DossierID,
		InfirmierID: &req.InfirmierID,
		DateSoin:    req.DateSoin,
		Description: req.Description,
		Observation: req.Observation,
	}

	err := s.db.QueryRow(ctx, queries.SoinQueries.Insert,
		soin.ID, req.DossierID, req.InfirmierID, req.DateSoin,
		req.Description, req.Observation,
	).Scan(&soin.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création du soin échouée: %w", err)
	}

	s.recordAudit("soin.creation", soin.ID, acteurID, map[string]interface{}{
		"dossier_id": req.DossierID,
	})

	return &soin, nil
}

// GetByID retourne un soin
func (s *SoinService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SoinResponse, error) {
	soin, err := scanSoin(s.db.QueryRow(ctx, queries.SoinQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("soin", "Soin introuvable")
		}
		return nil, fmt.Errorf("lecture du soin échouée: %w", err)
	}
	return soin, nil
}

// Search filtre les soins par dossier, infirmier, description et dates
func (s *SoinService) Search(ctx context.Context, get filters.Getter) ([]dto.SoinResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.SoinQueries.SearchBase + fragment + " ORDER BY date_soin DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des soins échouée: %w", err)
	}
	defer rows.Close()

	soins := make([]dto.SoinResponse, 0)
	for rows.Next() {
		soin, err := scanSoin(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un soin échouée: %w", err)
		}
		soins = append(soins, *soin)
	}

	return soins, rows.Err()
}

// Replace remplace tous les champs du soin
func (s *SoinService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceSoinRequest, acteurID uuid.UUID) (*dto.SoinResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.SoinQueries.Replace,
		id, req.DateSoin, req.Description, req.Observation,
	); err != nil {
		return nil, fmt.Errorf("remplacement du soin échoué: %w", err)
	}

	s.recordAudit("soin.remplacement", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *SoinService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchSoinRequest, acteurID uuid.UUID) (*dto.SoinResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.DateSoin == nil && req.Description == nil && req.Observation == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.SoinQueries.Patch,
		id, req.DateSoin, req.Description, req.Observation,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du soin échouée: %w", err)
	}

	s.recordAudit("soin.modification", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime un soin et ses médicaments rattachés
func (s *SoinService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.SoinQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression du soin échouée: %w", err)
	}

	s.recordAudit("soin.suppression", id.String(), acteurID, nil)
	return nil
}

func (s *SoinService) recordAudit(action, ressourceID string, acteurID uuid.UUID, donnees map[string]interface{}) {
	id, err := uuid.Parse(ressourceID)
	if err != nil {
		return
	}
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "soin_infirmier",
		RessourceID:   id,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanSoin(row pgx.Row) (*dto.SoinResponse, error) {
	var soin dto.SoinResponse
	var infirmierID *uuid.UUID

	err := row.Scan(
		&soin.ID, &soin.DossierID, &infirmierID, &soin.DateSoin,
		&soin.Description, &soin.Observation, &soin.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if infirmierID != nil {
		id := infirmierID.String()
		soin.InfirmierID = &id
	}

	return &soin, nil
}
