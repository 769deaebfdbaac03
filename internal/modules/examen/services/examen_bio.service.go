package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	auditServices "hopital-core/internal/modules/audit/services"
	"hopital-core/internal/modules/examen/dto"
	"hopital-core/internal/modules/examen/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
)

// ExamenBioService gère les examens biologiques et leurs résultats
type ExamenBioService struct {
	db         *postgres.Client
	audit      *auditServices.AuditService
	searchSpec *filters.Set
}

func NewExamenBioService(db *postgres.Client, audit *auditServices.AuditService) *ExamenBioService {
	return &ExamenBioService{
		db:    db,
		audit: audit,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "dossier_id", Column: "dossier_id", Kind: filters.Equals},
			filters.Spec{Param: "laborantin_id", Column: "laborantin_id", Kind: filters.Equals},
			filters.Spec{Param: "type_examen", Column: "type_examen", Kind: filters.Contains},
			filters.Spec{Param: "statut", Column: "statut", Kind: filters.Equals},
			filters.Spec{Param: "date_debut", Column: "date_examen", Kind: filters.DateFrom},
			filters.Spec{Param: "date_fin", Column: "date_examen", Kind: filters.DateTo},
		),
	}
}

// Create prescrit un examen biologique après validation des références
func (s *ExamenBioService) Create(ctx context.Context, req dto.CreateExamenBioRequest, acteurID uuid.UUID) (*dto.ExamenBioResponse, error) {
	if err := s.checkReferences(ctx, req.DossierID, req.LaborantinID); err != nil {
		return nil, err
	}

	id := uuid.New()
	var createdAt time.Time
	err := s.db.QueryRow(ctx, queries.ExamenBioQueries.Insert,
		id, req.DossierID, req.LaborantinID, req.TypeExamen, req.DateExamen,
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("création de l'examen biologique échouée: %w", err)
	}

	s.recordAudit("examen_biologique.creation", id, acteurID, map[string]interface{}{
		"dossier_id":  req.DossierID,
		"type_examen": req.TypeExamen,
	})

	return s.GetByID(ctx, id)
}

// GetByID retourne un examen biologique avec ses résultats
func (s *ExamenBioService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ExamenBioResponse, error) {
	examen, err := scanExamenBio(s.db.QueryRow(ctx, queries.ExamenBioQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("examen_biologique", "Examen biologique introuvable")
		}
		return nil, fmt.Errorf("lecture de l'examen biologique échouée: %w", err)
	}

	resultats, err := s.resultatsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	examen.Resultats = resultats

	return examen, nil
}

// Search filtre les examens biologiques, sans charger les résultats
func (s *ExamenBioService) Search(ctx context.Context, get filters.Getter) ([]dto.ExamenBioResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.ExamenBioQueries.SearchBase + fragment + " ORDER BY date_examen DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des examens biologiques échouée: %w", err)
	}
	defer rows.Close()

	examens := make([]dto.ExamenBioResponse, 0)
	for rows.Next() {
		examen, err := scanExamenBio(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un examen biologique échouée: %w", err)
		}
		examen.Resultats = []dto.ResultatResponse{}
		examens = append(examens, *examen)
	}

	return examens, rows.Err()
}

// Replace remplace tous les champs de l'examen
func (s *ExamenBioService) Replace(ctx context.Context, id uuid.UUID, req dto.ReplaceExamenBioRequest, acteurID uuid.UUID) (*dto.ExamenBioResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.ExamenBioQueries.Replace,
		id, req.TypeExamen, req.DateExamen, req.Statut,
	); err != nil {
		return nil, fmt.Errorf("remplacement de l'examen biologique échoué: %w", err)
	}

	s.recordAudit("examen_biologique.remplacement", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Patch ne modifie que les champs soumis, un patch vide est un no-op
func (s *ExamenBioService) Patch(ctx context.Context, id uuid.UUID, req dto.PatchExamenBioRequest, acteurID uuid.UUID) (*dto.ExamenBioResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if req.TypeExamen == nil && req.DateExamen == nil && req.Statut == nil {
		return s.GetByID(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.ExamenBioQueries.Patch,
		id, req.TypeExamen, req.DateExamen, req.Statut,
	); err != nil {
		return nil, fmt.Errorf("mise à jour de l'examen biologique échouée: %w", err)
	}

	s.recordAudit("examen_biologique.modification", id, acteurID, nil)

	return s.GetByID(ctx, id)
}

// Delete supprime un examen biologique et ses résultats
func (s *ExamenBioService) Delete(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.ExamenBioQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression de l'examen biologique échouée: %w", err)
	}

	s.recordAudit("examen_biologique.suppression", id, acteurID, nil)
	return nil
}

// CreateResultat consigne un résultat et marque l'examen terminé
func (s *ExamenBioService) CreateResultat(ctx context.Context, req dto.CreateResultatRequest, acteurID uuid.UUID) (*dto.ResultatResponse, error) {
	var examenExists bool
	if err := s.db.QueryRow(ctx, queries.ResultatQueries.ExistsExamen, req.ExamenBiologiqueID).Scan(&examenExists); err != nil {
		return nil, fmt.Errorf("vérification de l'examen échouée: %w", err)
	}
	if !examenExists {
		return nil, apperror.Conflict("Examen biologique introuvable", map[string]interface{}{
			"examen_biologique_id": req.ExamenBiologiqueID,
		})
	}

	var laborantinExists bool
	if err := s.db.QueryRow(ctx, queries.ExamenBioQueries.ExistsLaborantin, req.LaborantinID).Scan(&laborantinExists); err != nil {
		return nil, fmt.Errorf("vérification du laborantin échouée: %w", err)
	}
	if !laborantinExists {
		return nil, apperror.Conflict("Laborantin introuvable", map[string]interface{}{
			"laborantin_id": req.LaborantinID,
		})
	}

	resultat := dto.ResultatResponse{
		ID:                 uuid.New().String(),
		ExamenBiologiqueID: req.ExamenBiologiqueID,
		LaborantinID:       &req.LaborantinID,
		Contenu:            req.Contenu,
		DateResultat:       req.DateResultat,
	}

	err := s.db.QueryRow(ctx, queries.ResultatQueries.Insert,
		resultat.ID, req.ExamenBiologiqueID, req.LaborantinID,
		req.Contenu, req.DateResultat,
	).Scan(&resultat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("consignation du résultat échouée: %w", err)
	}

	s.recordAuditRaw("resultat_examen.creation", resultat.ID, acteurID, map[string]interface{}{
		"examen_biologique_id": req.ExamenBiologiqueID,
	})

	return &resultat, nil
}

// GetResultat retourne un résultat
func (s *ExamenBioService) GetResultat(ctx context.Context, id uuid.UUID) (*dto.ResultatResponse, error) {
	resultat, err := scanResultat(s.db.QueryRow(ctx, queries.ResultatQueries.GetByID, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("resultat_examen", "Résultat introuvable")
		}
		return nil, fmt.Errorf("lecture du résultat échouée: %w", err)
	}
	return resultat, nil
}

// PatchResultat ne modifie que les champs soumis
func (s *ExamenBioService) PatchResultat(ctx context.Context, id uuid.UUID, req dto.PatchResultatRequest, acteurID uuid.UUID) (*dto.ResultatResponse, error) {
	if _, err := s.GetResultat(ctx, id); err != nil {
		return nil, err
	}

	if req.Contenu == nil && req.DateResultat == nil {
		return s.GetResultat(ctx, id)
	}

	if err := s.db.Exec(ctx, queries.ResultatQueries.Patch,
		id, req.Contenu, req.DateResultat,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du résultat échouée: %w", err)
	}

	s.recordAuditRaw("resultat_examen.modification", id.String(), acteurID, nil)

	return s.GetResultat(ctx, id)
}

// DeleteResultat supprime un résultat
func (s *ExamenBioService) DeleteResultat(ctx context.Context, id uuid.UUID, acteurID uuid.UUID) error {
	if _, err := s.GetResultat(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.ResultatQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression du résultat échouée: %w", err)
	}

	s.recordAuditRaw("resultat_examen.suppression", id.String(), acteurID, nil)
	return nil
}

func (s *ExamenBioService) resultatsOf(ctx context.Context, examenID uuid.UUID) ([]dto.ResultatResponse, error) {
	rows, err := s.db.Query(ctx, queries.ExamenBioQueries.ResultatsByID, examenID)
	if err != nil {
		return nil, fmt.Errorf("lecture des résultats échouée: %w", err)
	}
	defer rows.Close()

	resultats := make([]dto.ResultatResponse, 0)
	for rows.Next() {
		resultat, err := scanResultat(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un résultat échouée: %w", err)
		}
		resultats = append(resultats, *resultat)
	}

	return resultats, rows.Err()
}

func (s *ExamenBioService) checkReferences(ctx context.Context, dossierID, laborantinID string) error {
	var dossierExists bool
	if err := s.db.QueryRow(ctx, queries.ExamenBioQueries.ExistsDossier, dossierID).Scan(&dossierExists); err != nil {
		return fmt.Errorf("vérification du dossier échouée: %w", err)
	}
	if !dossierExists {
		return apperror.Conflict("Dossier introuvable", map[string]interface{}{
			"dossier_id": dossierID,
		})
	}

	var laborantinExists bool
	if err := s.db.QueryRow(ctx, queries.ExamenBioQueries.ExistsLaborantin, laborantinID).Scan(&laborantinExists); err != nil {
		return fmt.Errorf("vérification du laborantin échouée: %w", err)
	}
	if !laborantinExists {
		return apperror.Conflict("Laborantin introuvable", map[string]interface{}{
			"laborantin_id": laborantinID,
		})
	}

	return nil
}

func (s *ExamenBioService) recordAudit(action string, ressourceID uuid.UUID, acteurID uuid.UUID, donnees map[string]interface{}) {
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "examen_biologique",
		RessourceID:   ressourceID,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func (s *ExamenBioService) recordAuditRaw(action, ressourceID string, acteurID uuid.UUID, donnees map[string]interface{}) {
	id, err := uuid.Parse(ressourceID)
	if err != nil {
		return
	}
	s.audit.Record(auditServices.AuditEvent{
		Action:        action,
		Ressource:     "resultat_examen",
		RessourceID:   id,
		UtilisateurID: acteurID,
		Donnees:       donnees,
	})
}

func scanExamenBio(row pgx.Row) (*dto.ExamenBioResponse, error) {
	var e dto.ExamenBioResponse
	var laborantinID *uuid.UUID

	err := row.Scan(
		&e.ID, &e.DossierID, &laborantinID, &e.TypeExamen,
		&e.DateExamen, &e.Statut, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if laborantinID != nil {
		id := laborantinID.String()
		e.LaborantinID = &id
	}

	return &e, nil
}

func scanResultat(row pgx.Row) (*dto.ResultatResponse, error) {
	var r dto.ResultatResponse
	var laborantinID *uuid.UUID

	err := row.Scan(
		&r.ID, &r.ExamenBiologiqueID, &laborantinID, &r.Contenu,
		&r.DateResultat, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if laborantinID != nil {
		id := laborantinID.String()
		r.LaborantinID = &id
	}

	return &r, nil
}
