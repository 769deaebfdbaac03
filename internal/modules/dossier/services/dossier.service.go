package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hopital-core/internal/infrastructure/database/postgres"
	"hopital-core/internal/infrastructure/database/redis"
	"hopital-core/internal/modules/dossier/dto"
	"hopital-core/internal/modules/dossier/queries"
	"hopital-core/internal/shared/apperror"
	"hopital-core/internal/shared/utils"
)

const dossierCacheTTL = 10 * time.Minute

// Messages du point d'accès NSS, attendus tels quels par les clients
const (
	MsgNSSRequis          = "NSS is required."
	MsgPatientIntrouvable = "Patient not found."
)

// DossierService registre des dossiers patients : création transactionnelle
// compte + fiche + dossier, artefact QR, recherches par id / nom / NSS
type DossierService struct {
	db        *postgres.Client
	txManager *postgres.TransactionManager
	redis     *redis.Client
	qrcodes   *QRCodeService
}

func NewDossierService(
	db *postgres.Client,
	txManager *postgres.TransactionManager,
	redisClient *redis.Client,
	qrcodes *QRCodeService,
) *DossierService {
	return &DossierService{
		db:        db,
		txManager: txManager,
		redis:     redisClient,
		qrcodes:   qrcodes,
	}
}

// CreatePatientWithDossier crée le compte patient, sa fiche et son dossier
// dans une seule transaction. Le QR est écrit après commit : en cas d'échec
// le dossier reste valide avec un chemin vide, réparé au prochain Update.
func (s *DossierService) CreatePatientWithDossier(ctx context.Context, req dto.CreatePatientRequest) (*dto.DossierResponse, error) {
	var nssExists bool
	if err := s.db.QueryRow(ctx, queries.DossierQueries.ExistsNSS, req.NSS).Scan(&nssExists); err != nil {
		return nil, fmt.Errorf("vérification NSS échouée: %w", err)
	}
	if nssExists {
		return nil, apperror.Conflict("Un dossier existe déjà avec ce NSS", map[string]interface{}{
			"nss": req.NSS,
		})
	}

	var medecinID *uuid.UUID
	if req.MedecinID != nil && strings.TrimSpace(*req.MedecinID) != "" {
		parsed, err := uuid.Parse(*req.MedecinID)
		if err != nil {
			return nil, apperror.Validation("Identifiant du médecin traitant invalide", map[string]string{
				"medecin_traitant_id": *req.MedecinID,
			})
		}
		var exists bool
		if err := s.db.QueryRow(ctx, queries.DossierQueries.ExistsMedecin, parsed).Scan(&exists); err != nil {
			return nil, fmt.Errorf("vérification du médecin traitant échouée: %w", err)
		}
		if !exists {
			return nil, apperror.Conflict("Médecin traitant introuvable", map[string]interface{}{
				"medecin_traitant_id": *req.MedecinID,
			})
		}
		medecinID = &parsed
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashage du mot de passe échoué: %w", err)
	}

	utilisateurID := uuid.New()
	patientID := uuid.New()
	dossierID := uuid.New()
	var createdAt time.Time

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		if err := tx.Exec(ctx, queries.DossierQueries.InsertUtilisateur,
			utilisateurID, strings.ToLower(req.Email), passwordHash,
			req.Nom, req.Prenoms, nullable(req.Telephone),
		); err != nil {
			return fmt.Errorf("création du compte patient échouée: %w", err)
		}

		if err := tx.Exec(ctx, queries.DossierQueries.InsertPatient,
			patientID, utilisateurID, req.NSS, req.DateNaissance,
			req.Sexe, nullable(req.Adresse), medecinID,
		); err != nil {
			return fmt.Errorf("création de la fiche patient échouée: %w", err)
		}

		return tx.QueryRow(ctx, queries.DossierQueries.InsertDossier,
			dossierID, patientID,
		).Scan(&createdAt)
	})
	if err != nil {
		return nil, err
	}

	// QR hors transaction : son échec ne remet pas en cause le dossier
	s.writeQRCode(ctx, dossierID.String(), patientID.String(), req.Nom+" "+req.Prenoms)

	return s.GetByID(ctx, dossierID)
}

// GetByID retourne un dossier, cache Redis en lecture d'abord
func (s *DossierService) GetByID(ctx context.Context, dossierID uuid.UUID) (*dto.DossierResponse, error) {
	if cached := s.readCache(ctx, dossierID.String()); cached != nil {
		return cached, nil
	}

	dossier, err := s.scanDossier(s.db.QueryRow(ctx, queries.DossierQueries.GetByDossierID, dossierID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("dossier", "Dossier introuvable")
		}
		return nil, fmt.Errorf("lecture du dossier échouée: %w", err)
	}

	s.writeCache(ctx, dossier)
	return dossier, nil
}

// GetByPatientNom recherche par identifiant patient et nom exact
func (s *DossierService) GetByPatientNom(ctx context.Context, patientID uuid.UUID, nom string) (*dto.DossierResponse, error) {
	dossier, err := s.scanDossier(s.db.QueryRow(ctx, queries.DossierQueries.GetByPatientNom, patientID, nom))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("dossier", "Dossier introuvable")
		}
		return nil, fmt.Errorf("recherche du dossier échouée: %w", err)
	}
	return dossier, nil
}

// GetByNSS recherche par NSS exact. Les messages sont contractuels.
func (s *DossierService) GetByNSS(ctx context.Context, nss string) (*dto.DossierResponse, error) {
	if strings.TrimSpace(nss) == "" {
		return nil, apperror.Validation(MsgNSSRequis, nil)
	}

	// Index NSS → dossier id, alimenté à l'écriture du cache
	if raw, err := s.redis.Get(ctx, s.redis.Keys().NSSIndex(nss)); err == nil && raw != "" {
		if dossierID, err := uuid.Parse(raw); err == nil {
			if dossier, err := s.GetByID(ctx, dossierID); err == nil {
				return dossier, nil
			}
		}
	}

	dossier, err := s.scanDossier(s.db.QueryRow(ctx, queries.DossierQueries.GetByNSS, nss))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperror.NotFound("patient", MsgPatientIntrouvable)
		}
		return nil, fmt.Errorf("recherche par NSS échouée: %w", err)
	}

	s.writeCache(ctx, dossier)
	return dossier, nil
}

// Update modifie la fiche patient puis régénère l'artefact QR,
// l'ancien fichier est écarté
func (s *DossierService) Update(ctx context.Context, dossierID uuid.UUID, req dto.UpdatePatientRequest) (*dto.DossierResponse, error) {
	dossier, err := s.GetByID(ctx, dossierID)
	if err != nil {
		return nil, err
	}

	if req.NSS != nil && *req.NSS != dossier.Patient.NSS {
		var nssExists bool
		if err := s.db.QueryRow(ctx, queries.DossierQueries.ExistsNSS, *req.NSS).Scan(&nssExists); err != nil {
			return nil, fmt.Errorf("vérification NSS échouée: %w", err)
		}
		if nssExists {
			return nil, apperror.Conflict("Un dossier existe déjà avec ce NSS", map[string]interface{}{
				"nss": *req.NSS,
			})
		}
	}

	var medecinID *uuid.UUID
	if req.MedecinID != nil && strings.TrimSpace(*req.MedecinID) != "" {
		parsed, err := uuid.Parse(*req.MedecinID)
		if err != nil {
			return nil, apperror.Validation("Identifiant du médecin traitant invalide", map[string]string{
				"medecin_traitant_id": *req.MedecinID,
			})
		}
		var exists bool
		if err := s.db.QueryRow(ctx, queries.DossierQueries.ExistsMedecin, parsed).Scan(&exists); err != nil {
			return nil, fmt.Errorf("vérification du médecin traitant échouée: %w", err)
		}
		if !exists {
			return nil, apperror.Conflict("Médecin traitant introuvable", map[string]interface{}{
				"medecin_traitant_id": *req.MedecinID,
			})
		}
		medecinID = &parsed
	}

	patientID, err := uuid.Parse(dossier.Patient.ID)
	if err != nil {
		return nil, fmt.Errorf("identifiant patient corrompu: %w", err)
	}

	if err := s.db.Exec(ctx, queries.DossierQueries.UpdatePatient,
		patientID, req.Nom, req.Prenoms, req.Telephone,
		req.NSS, req.DateNaissance, req.Sexe, req.Adresse, medecinID,
	); err != nil {
		return nil, fmt.Errorf("mise à jour de la fiche patient échouée: %w", err)
	}

	s.invalidateCache(ctx, dossier)

	nom := dossier.Patient.Nom
	if req.Nom != nil {
		nom = *req.Nom
	}
	prenoms := dossier.Patient.Prenoms
	if req.Prenoms != nil {
		prenoms = *req.Prenoms
	}
	s.writeQRCode(ctx, dossierID.String(), dossier.Patient.ID, nom+" "+prenoms)

	return s.GetByID(ctx, dossierID)
}

// Delete supprime le compte patient : fiche, dossier et actes cliniques
// suivent en cascade, l'artefact QR est retiré du stockage
func (s *DossierService) Delete(ctx context.Context, dossierID uuid.UUID) error {
	dossier, err := s.GetByID(ctx, dossierID)
	if err != nil {
		return err
	}

	if err := s.db.Exec(ctx, queries.DossierQueries.DeleteDossier, dossierID); err != nil {
		return fmt.Errorf("suppression du dossier échouée: %w", err)
	}

	s.invalidateCache(ctx, dossier)

	if dossier.QRCodeURL != "" {
		if err := s.qrcodes.Remove(s.qrcodes.RelPath(dossierID.String())); err != nil {
			fmt.Printf("[DOSSIER] ⚠️ Suppression du QR %s échouée: %v\n", dossierID, err)
		}
	}

	return nil
}

// writeQRCode génère l'artefact et répare le chemin en base, best-effort
func (s *DossierService) writeQRCode(ctx context.Context, dossierID, patientID, displayName string) {
	relPath, err := s.qrcodes.Generate(dossierID, patientID, displayName)
	if err != nil {
		fmt.Printf("[DOSSIER] ⚠️ Génération du QR %s échouée: %v\n", dossierID, err)
		return
	}

	if err := s.db.Exec(ctx, queries.DossierQueries.UpdateQRCodePath, dossierID, relPath); err != nil {
		fmt.Printf("[DOSSIER] ⚠️ Enregistrement du chemin QR %s échoué: %v\n", dossierID, err)
	}

	s.redis.Del(ctx, s.redis.Keys().DossierCache(dossierID))
}

func (s *DossierService) scanDossier(row pgx.Row) (*dto.DossierResponse, error) {
	var d dto.DossierResponse
	var qrPath string
	var medecinID *uuid.UUID

	err := row.Scan(
		&d.ID, &qrPath, &d.CreatedAt,
		&d.Patient.ID, &d.Patient.UtilisateurID, &d.Patient.Email,
		&d.Patient.Nom, &d.Patient.Prenoms, &d.Patient.Telephone,
		&d.Patient.NSS, &d.Patient.DateNaissance, &d.Patient.Sexe,
		&d.Patient.Adresse, &medecinID,
	)
	if err != nil {
		return nil, err
	}

	if medecinID != nil {
		id := medecinID.String()
		d.Patient.MedecinID = &id
	}
	d.QRCodeURL = s.qrcodes.URL(qrPath)

	return &d, nil
}

func (s *DossierService) readCache(ctx context.Context, dossierID string) *dto.DossierResponse {
	raw, err := s.redis.Get(ctx, s.redis.Keys().DossierCache(dossierID))
	if err != nil || raw == "" {
		return nil
	}

	var dossier dto.DossierResponse
	if err := json.Unmarshal([]byte(raw), &dossier); err != nil {
		return nil
	}
	return &dossier
}

func (s *DossierService) writeCache(ctx context.Context, dossier *dto.DossierResponse) {
	encoded, err := json.Marshal(dossier)
	if err != nil {
		return
	}

	keys := s.redis.Keys()
	if err := s.redis.Set(ctx, keys.DossierCache(dossier.ID), string(encoded), dossierCacheTTL); err != nil {
		return
	}
	s.redis.Set(ctx, keys.NSSIndex(dossier.Patient.NSS), dossier.ID, dossierCacheTTL)
}

func (s *DossierService) invalidateCache(ctx context.Context, dossier *dto.DossierResponse) {
	keys := s.redis.Keys()
	s.redis.Del(ctx, keys.DossierCache(dossier.ID), keys.NSSIndex(dossier.Patient.NSS))
}

func nullable(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
