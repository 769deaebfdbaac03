package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/ordonnance/dto"
	"hopital-core/internal/modules/ordonnance/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// OrdonnanceService gère les prescriptions et leur validation
type OrdonnanceService struct {
	db         *postgres.Client
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewOrdonnanceService(db *postgres.Client, audit *auditServices.AuditService) *OrdonnanceService {
	return &OrdonnanceService{
		db:    db,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "medecin_id", Column: "medecin_id", Kind: filters.Equals},
			filters.Spec{Param: "est_validee", Column: "est_validee::text", Kind: filters.Equals},
			filters.Spec{Param: "date_debut", Column: "date_prescription", Kind: filters.DateFrom},
			filters.Spec{Param: "date_fin", Column: "date_prescription", Kind: filters.DateTo},
		),
	}
}

// Create prescrit une ordonnance après validation des références
func (s *OrdonnanceService) Create(ctx context.Context, req dto.CreateOrdonnanceRequest, acteurID uuid.UUID) (*dto.OrdonnanceResponse, error) {
	if err := s.checkReferences(ctx, req.DossierID, req.MedecinID); err != nil {
		return nil, err
	}

	id := uuid.New()
	var ordonnance dto.OrdonnanceResponse

	err := s.db.QueryRow(ctx, queries.OrdonnanceQueries.Insert,
		id, req.DossierID, req.MedecinID, req.DatePrescription, req.Instructions,
	).Scan(&ordonnance.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création de l'ordonnance échouée: %w", err)
	}

	s.recordAudit("ordonnance.creation", id, acteurID, map[string]interface{}{
		"dossier_id": req.DossierID,
	})

	return s.GetByID(ctx, id)
}

// GetByID retourne une ordonnance avec ses médicaments
func (s *OrdonnanceService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OrdonnanceResponse, error) {
	ordonnance, err := scanOrdonnance(s.db.QueryRow(ctx, queries.OrdonnanceQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("ordonnance", "Ordonnance introuvable")
		}
		return nil, fmt.Errorf("lecture de l'ordonnance échouée: %w", err)
	}

	medicaments, err := s.medicamentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	ordonnance.Medicaments = medicaments

	return ordonnance, nil
}

// Search filtre les ordonnances, sans charger les médicaments
func (s *OrdonnanceService) Search(ctx context.Context, get filters.Getter) ([]dto.OrdonnanceResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.OrdonnanceQueries.SearchBase + fragment + " ORDER BY date_prescription DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des ordonnances échouée: %w", err)
	}
	defer rows.Close()

	ordonnances := make([]dto.OrdonnanceResponse, 0)
	for rows.Next() {
		ordonnance, err := scanOrdonnance(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'une ordonnance échouée: %w", err)
		}
		ordonnance.Medicaments = []dto.MedicamentResponse{}
		ordonnances = append(ordonnances, *ordonnance)
	}

	return ordonnances, rows.Err()
}

// Replace remplace la prescription et remet la validation à zéro
func (s *OrdonnanceService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceOrdonnanceRequest, acteurID uuid.UUID) (*dto.OrdonnanceResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.OrdonnanceQueries.Replace,
		id, req.DatePrescription, req.Instructions,
	); err != nil {
		return nil, fmt.Errorf("remplacement de l'ordonnance échoué: %w", err)
	}

	s.recordAudit("ordonnance.remplacement", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *OrdonnanceService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchOrdonnanceRequest, acteurID uuid.UUID) (*dto.OrdonnanceResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.DatePrescription == nil && req.Instructions == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.OrdonnanceQueries.Patch,
		id, req.DatePrescription, req.Instructions,
	); err != nil {
		return nil, fmt.Errorf("mise à jour de l'ordonnance échouée: %w", err)
	}

	s.recordAudit("ordonnance.modification", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Validate applique la décision explicite du médecin agissant.
// L'acteur doit porter un profil technique de médecin.
func (s *OrdonnanceService) Validate(ctx context.Context, id uuid.UUID, estValidee bool, acteurID uuid.UUID) (*dto.OrdonnanceResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var profilID uuid.UUID
	err := s.db.QueryRow(ctx, queries.OrdonnanceQueries.ProfilIDByUserID, acteurID).Scan(&profilID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.Denied()
		}
		return nil, fmt.Errorf("résolution du profil validateur échouée: %w", err)
	}

	if err := s.db.Exec(ctx, queries.OrdonnanceQueries.Validate, id, estValidee, profilID); err != nil {
		return nil, fmt.Errorf("validation de l'ordonnance échouée: %w", err)
	}

	s.recordAudit("ordonnance.validation", id, acteurID, map[string]interface{}{
		"est_validee": estValidee,
	})

	return s.GetByID(ctx, id)
}

// Delete supprime une ordonnance et ses médicaments
func (s *OrdonnanceService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.OrdonnanceQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression de l'ordonnance échouée: %w", err)
	}

	s.recordAudit("ordonnance.suppression", id, acteurID, nil)
	return nil
}

func (s *OrdonnanceService) medicamentsOf(ctx context.Context, ordonnanceID uuid.UUID) ([]dto.MedicamentResponse, error) {
	rows, err := s.db.Query(ctx, queries.OrdonnanceQueries.MedicamentsByID, ordonnanceID)
	if err != nil {
		return nil, fmt.Errorf("lecture des médicaments échouée: %w", err)
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

func (s *OrdonnanceService) checkReferences(ctx context.Context, dossierID, medecinID string) error {
	var dossierExists bool
	if err := s.db.QueryRow(ctx, queries.OrdonnanceQueries.ExistsDossier, dossierID).Scan(&dossierExists); err != nil {
		return fmt.Errorf("vérification du dossier échouée: %w", err)
	}
	if !dossierExists {
		return apperror.Conflict("Dossier introuvable", map[string]interface{}{
			"dossier_id": dossierID,
		})
	}

	var medecinExists bool
	if err := s.db.QueryRow(ctx, queries.OrdonnanceQueries.ExistsMedecin, medecinID).Scan(&medecinExists); err != nil {
		return fmt.Errorf("vérification du médecin échouée: %w", err)
	}
	if !medecinExists {
		return apperror.Conflict("Médecin introuvable", map[string]interface{}{
			"medecin_id": medecinID,
		})
	}

	return nil
}

func (s *OrdonnanceService) recordAudit(action string, ressourceID uuid.UUID, acteurID uuid.UUID, donnees map[string]interface{}) {
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "ordonnance",
		RessourceID:   ressourceID,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanOrdonnance(row pgx.Row) (*dto.OrdonnanceResponse, error) {
	var o dto.OrdonnanceResponse
	var medecinID, valideePar *uuid.UUID

	err := row.Scan(
		&o.ID, &o.DossierID, &medecinID, &o.DatePrescription,
		&o.Instructions, &o.EstValidee, &valideePar, &o.ValideeAt, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if medecinID != nil {
		id := medecinID.String()
		o.MedecinID = &id
	}
	if valideePar != nil {
		id := valideePar.String()
		o.ValideePar = &id
	}

	return &o, nil
}

func scanMedicament(row pgx.Row) (*dto.MedicamentResponse, error) {
	var m dto.MedicamentResponse
	var ordonnanceID, soinID *uuid.UUID

	err := row.Scan(
		&m.ID, &ordonnanceID, &soinID, &m.Nom, &m.Dosage,
		&m.Frequence, &m.DureeJours, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ordonnanceID != nil {
		id := ordonnanceID.String()
		m.OrdonnanceID = &id
	}
	if soinID != nil {
		id := soinID.String()
		m.SoinID = &id
	}

	return &m, nil
}
