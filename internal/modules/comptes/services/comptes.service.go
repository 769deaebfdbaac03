package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	authServices "hopital-core/internal/modules/auth/services"
	"hopital-core/internal/modules/comptes/dto"
	"hopital-core/internal/modules/comptes/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/filters"
	"hopital-core/internal/shared/policy"
	"hopital-core/internal/shared/utils"
)

// ComptesService gère les comptes du personnel et leurs profils techniques
type ComptesService struct {
	db         *postgres.Client
	profils    *authServices.ProfilService
	searchSpec *filters.Set
}

func NewComptesService(
	db *postgres.Client,
	profils *authServices.ProfilService,
) *ComptesService {
	return &ComptesService{
		db:      db,
		profils: profils,
		searchSpec: filters.NewSet(
			filters.Spec{Param: "email", Column: "u.email", Kind: filters.Contains},
			filters.Spec{Param: "nom", Column: "u.nom", Kind: filters.Contains},
			filters.Spec{Param: "role", Column: "u.role", Kind: filters.Equals},
			filters.Spec{Param: "statut", Column: "u.statut", Kind: filters.Equals},
		),
	}
}

// Create crée un compte du personnel. Le rôle patient passe par le
// module dossier, jamais par ici.
func (s *ComptesService) Create(ctx context.Context, req dto.CreateUtilisateurRequest) (*dto.UtilisateurResponse, error) {
	if !policy.IsRoleValide(req.Role) || req.Role == policy.RolePatient {
		return nil, apperror.Validation("Rôle invalide", map[string]string{
			"role": fmt.Sprintf("valeurs acceptées: admin, technicien, administratif (reçu: %s)", req.Role),
		})
	}

	var exists bool
	if err := s.db.QueryRow(ctx, queries.ComptesQueries.ExistsEmail, strings.ToLower(req.Email)).Scan(&exists); err != nil {
		return nil, fmt.Errorf("vérification email échouée: %w", err)
	}
	if exists {
		return nil, apperror.Conflict("Un compte existe déjà avec cet email", map[string]interface{}{
			"email": req.Email,
		})
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashage du mot de passe échoué: %w", err)
	}

	utilisateur := dto.UtilisateurResponse{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(req.Email),
		Role:      req.Role,
		Nom:       req.Nom,
		Prenoms:   req.Prenoms,
		Telephone: req.Telephone,
		Statut:    "actif",
	}

	err = s.db.QueryRow(ctx, queries.ComptesQueries.Insert,
		utilisateur.ID, utilisateur.Email, passwordHash, utilisateur.Role,
		utilisateur.Nom, utilisateur.Prenoms, nullable(utilisateur.Telephone),
	).Scan(&utilisateur.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("création du compte échouée: %w", err)
	}

	return &utilisateur, nil
}

// GetByID retourne un compte avec son profil technique éventuel
func (s *ComptesService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UtilisateurResponse, error) {
	row := s.db.QueryRow(ctx, queries.ComptesQueries.GetByID, id)
	utilisateur, err := scanUtilisateur(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("utilisateur", "Utilisateur introuvable")
		}
		return nil, fmt.Errorf("lecture du compte échouée: %w", err)
	}
	return utilisateur, nil
}

// Search filtre les comptes par email, nom, rôle et statut
func (s *ComptesService) Search(ctx context.Context, get filters.Getter) ([]dto.UtilisateurResponse, error) {
	fragment, args := s.searchSpec.Build(get, 1)
	query := queries.ComptesQueries.SearchBase + fragment + " ORDER BY u.created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("recherche des comptes échouée: %w", err)
	}
	defer rows.Close()

	utilisateurs := make([]dto.UtilisateurResponse, 0)
	for rows.Next() {
		utilisateur, err := scanUtilisateur(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture d'un compte échouée: %w", err)
		}
		utilisateurs = append(utilisateurs, *utilisateur)
	}

	return utilisateurs, rows.Err()
}

// Update met à jour les champs soumis d'un compte
func (s *ComptesService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUtilisateurRequest) (*dto.UtilisateurResponse, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hashage du mot de passe échoué: %w", err)
		}
		passwordHash = &hash
	}

	var email *string
	if req.Email != nil {
		lowered := strings.ToLower(*req.Email)
		email = &lowered
	}

	if err := s.db.Exec(ctx, queries.ComptesQueries.Update,
		id, email, passwordHash, req.Nom, req.Prenoms, req.Telephone, req.Statut,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du compte échouée: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete supprime un compte. Les actes cliniques qui référencent son profil
// technique survivent : leurs clés étrangères passent à NULL.
func (s *ComptesService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.ComptesQueries.Delete, id); err != nil {
		return fmt.Errorf("suppression du compte échouée: %w", err)
	}

	s.profils.Invalidate(ctx, id.String())
	return nil
}

// CreateProfil rattache un profil technique à un technicien
func (s *ComptesService) CreateProfil(ctx context.Context, utilisateurID uuid.UUID, req dto.CreateProfilTechniqueRequest) (*dto.UtilisateurResponse, error) {
	utilisateur, err := s.GetByID(ctx, utilisateurID)
	if err != nil {
		return nil, err
	}

	if utilisateur.Role != policy.RoleTechnicien {
		return nil, apperror.Validation("Seul un technicien peut recevoir un profil technique", map[string]string{
			"role": utilisateur.Role,
		})
	}
	if !policy.IsMetierValide(req.RoleMetier) {
		return nil, apperror.Validation("Rôle métier non reconnu", map[string]string{
			"role_metier": req.RoleMetier,
		})
	}
	if utilisateur.RoleMetier != nil {
		return nil, apperror.Conflict("Ce technicien possède déjà un profil technique", nil)
	}

	outils, err := marshalOutils(req.Outils)
	if err != nil {
		return nil, err
	}

	if err := s.db.Exec(ctx, queries.ComptesQueries.InsertProfil,
		uuid.New(), utilisateurID, req.RoleMetier, outils,
	); err != nil {
		return nil, fmt.Errorf("création du profil technique échouée: %w", err)
	}

	s.profils.Invalidate(ctx, utilisateurID.String())
	return s.GetByID(ctx, utilisateurID)
}

// UpdateProfil met à jour le rôle métier ou les outils d'un profil
func (s *ComptesService) UpdateProfil(ctx context.Context, utilisateurID uuid.UUID, req dto.UpdateProfilTechniqueRequest) (*dto.UtilisateurResponse, error) {
	utilisateur, err := s.GetByID(ctx, utilisateurID)
	if err != nil {
		return nil, err
	}
	if utilisateur.RoleMetier == nil {
		return nil, apperror.NotFound("profil_technique", "Ce compte n'a pas de profil technique")
	}

	if req.RoleMetier != nil && !policy.IsMetierValide(*req.RoleMetier) {
		return nil, apperror.Validation("Rôle métier non reconnu", map[string]string{
			"role_metier": *req.RoleMetier,
		})
	}

	var outils interface{}
	if req.Outils != nil {
		encoded, err := marshalOutils(req.Outils)
		if err != nil {
			return nil, err
		}
		outils = encoded
	}

	if err := s.db.Exec(ctx, queries.ComptesQueries.UpdateProfil,
		utilisateurID, req.RoleMetier, outils,
	); err != nil {
		return nil, fmt.Errorf("mise à jour du profil technique échouée: %w", err)
	}

	s.profils.Invalidate(ctx, utilisateurID.String())
	return s.GetByID(ctx, utilisateurID)
}

func scanUtilisateur(row pgx.Row) (*dto.UtilisateurResponse, error) {
	var u dto.UtilisateurResponse
	var profilID *uuid.UUID
	var rawOutils []byte

	err := row.Scan(
		&u.ID, &u.Email, &u.Role, &u.Nom, &u.Prenoms,
		&u.Telephone, &u.Statut, &u.CreatedAt,
		&profilID, &u.RoleMetier, &rawOutils,
	)
	if err != nil {
		return nil, err
	}

	if profilID != nil {
		id := profilID.String()
		u.ProfilID = &id
	}

	if len(rawOutils) > 0 {
		if err := json.Unmarshal(rawOutils, &u.Outils); err != nil {
			return nil, fmt.Errorf("décodage des outils échoué: %w", err)
		}
	}

	return &u, nil
}

func marshalOutils(outils []string) ([]byte, error) {
	if outils == nil {
		outils = []string{}
	}
	encoded, err := json.Marshal(outils)
	if err != nil {
		return nil, fmt.Errorf("encodage des outils échoué: %w", err)
	}
	return encoded, nil
}

func nullable(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
