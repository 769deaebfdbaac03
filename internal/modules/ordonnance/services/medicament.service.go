package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/ordonnance/dto"
	"hopital-core/internal/modules/ordonnance/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// MedicamentService gère les médicaments rattachés aux ordonnances
// et aux soins infirmiers
type MedicamentService struct {
	db         *postgres.Client
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewMedicamentService(db *postgres.Client, audit *auditServices.AuditService) *MedicamentService {
	return &MedicamentService{
		db:    db,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "ordonnance_id", Column: "ordonnance_id", Kind: filters.Equals},
			filters.Spec{Param: "soin_id", Column: "soin_id", Kind: filters.Equals},
			filters.Spec{Param: "nom", Column: "nom", Kind: filters.Contains},
		),
	}
}

// Create rattache un médicament. Exactement un rattachement doit être
// fourni : ordonnance OU soin, sinon 400 avant toute écriture.
func (s *MedicamentService) Create(ctx context.Context, req dto.CreateMedicamentRequest, acteurID uuid.UUID) (*dto.MedicamentResponse, error) {
	hasOrdo := req.OrdonnanceID != nil && strings.TrimSpace(*req.OrdonnanceID) != ""
	hasSoin := req.SoinID != nil && strings.TrimSpace(*req.SoinID) != ""

	if hasOrdo == hasSoin {
		return nil, apperror.Validation(
			"Un médicament se rattache soit à une ordonnance, soit à un soin",
			map[string]string{
				"ordonnance_id": "exactement un rattachement requis",
				"soin_id":       "exactement un rattachement requis",
			},
		)
	}

	if hasOrdo {
		var exists bool
		if err := s.db.QueryRow(ctx, queries.MedicamentQueries.ExistsOrdo, *req.OrdonnanceID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("vérification de l'ordonnance échouée: %w", err)
		}
		if !exists {
			return nil, apperror.Conflict("Ordonnance introuvable", map[string]interface{}{
				"ordonnance_id": *req.OrdonnanceID,
			})
		}
	} else {
		var exists bool
		if err := s.db.QueryRow(ctx, queries.MedicamentQueries.ExistsSoin, *req.SoinID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("vérification du soin échouée: %w", err)
		}
		if !exists {
			return nil, apperror.Conflict("Soin introuvable", map[string]interface{}{
				"soin_id": *req.SoinID,
			})
		}
	}

	medicament := dto.MedicamentResponse{
		ID:           uuid.New().String(),
		OrdonnanceID: req.OrdonnanceID,
		SoinID:       req.SoinID,
		Nom:          req.Nom,
		Dosage:       req.Dosage,
		Frequence:    req.Frequence,
		DureeJours:   req.DureeJours,
	}

	err := s.db.QueryRow(ctx, queries.MedicamentQueries.Insert,
		medicament.ID, req.OrdonnanceID, req.SoinID,
		req.Nom, req.Dosage, req.Frequence, req.DureeJours,
	).Scan(&medicament.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création du médicament échouée: %w", err)
	}

	s.recordAudit("medicament.creation", medicament.ID, acteurID, map[string]interface{}{
		"nom": req.Nom,
	})

	return &medicament, nil
}

// GetByID retourne un médicament
func (s *MedicamentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicamentResponse, error) {
	medicament, err := scanMedicament(s.db.QueryRow(ctx, queries.MedicamentQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("medicament", "Médicament introuvable")
		}
		return nil, fmt.Errorf("lecture du médicament échouée: %w", err)
	}
	return medicament, nil
}

// Search filtre les médicaments par rattachement et nom
func (s *MedicamentService) Search(ctx context.Context, get filters.Getter) ([]dto.MedicamentResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.MedicamentQueries.SearchBase + fragment + " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des médicaments échouée: %w", err)
	}
	defer rows.Close()

	medicaments := make([]dto.MedicamentResponse, 0)
	for rows.Next() {
		medicament, err := scanMedicament(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un médicament échouée: %w", err)
		}
		medicaments = append(medicaments, *medicament)
	}

	return medicaments, rows.Err()
}

// Patch ne modifie que les champs soumis, le rattachement est immuable
func (s *MedicamentService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchMedicamentRequest, acteurID uuid.UUID) (*dto.MedicamentResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.Nom == nil && req.Dosage == nil && req.Frequence == nil && req.DureeJours == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.MedicamentQueries.Patch,
		id, req.Nom, req.Dosage, req.Frequence, req.DureeJours,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du médicament échouée: %w", err)
	}

	s.recordAudit("medicament.modification", id.String(), acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime un médicament, 404 s'il n'existe pas
func (s *MedicamentService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.MedicamentQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression du médicament échouée: %w", err)
	}

	s.recordAudit("medicament.suppression", id.String(), acteurID, nil)
	return nil
}

func (s *MedicamentService) recordAudit(action, ressourceID string, acteurID uuid.UUID, donnees map[string]interface{}) {
	id, err := uuid.Parse(ressourceID)
	if err != nil {
		return
	}
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "medicament",
		RessourceID:   id,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}
