package dto

import "time"

// CreateOrdonnanceRequest prescrit une ordonnance dans un dossier
type CreateOrdonnanceRequest struct {
	DossierID        string `json:"dossier_id" validate:"required,uuid"`
	MedecinID        string `json:"medecin_id" validate:"required,uuid"`
	DatePrescription string `json:"date_prescription" validate:"required,datetime=2006-01-02"`
	Instructions     string `json:"instructions"`
}

// ReplaceOrdonnanceRequest remplacement complet des champs de prescription
type ReplaceOrdonnanceRequest struct {
	DatePrescription string `json:"date_prescription" validate:"required,datetime=2006-01-02"`
	Instructions     string `json:"instructions"`
}

// PatchOrdonnanceRequest mise à jour partielle d'une ordonnance
type PatchOrdonnanceRequest struct {
	DatePrescription *string `json:"date_prescription" validate:"omitempty,datetime=2006-01-02"`
	Instructions     *string `json:"instructions"`
}

// ValidationRequest décision explicite de validation par un médecin
type ValidationRequest struct {
	EstValidee *bool `json:"est_validee" validate:"required"`
}

// OrdonnanceResponse représentation API d'une ordonnance et de ses médicaments
type OrdonnanceResponse struct {
	ID               string               `json:"id"`
	DossierID        string               `json:"dossier_id"`
	MedecinID        *string              `json:"medecin_id"`
	DatePrescription string               `json:"date_prescription"`
	Instructions     string               `json:"instructions"`
	EstValidee       bool                 `json:"est_validee"`
	ValideePar       *string              `json:"validee_par"`
	ValideeAt        *time.Time           `json:"validee_at"`
	Medicaments      []MedicamentResponse `json:"medicaments"`
	CreatedAt        time.Time            `json:"created_at"`
}

// CreateMedicamentRequest rattache un médicament à une ordonnance OU à un
// soin infirmier, jamais aux deux
type CreateMedicamentRequest struct {
	OrdonnanceID *string `json:"ordonnance_id" validate:"omitempty,uuid"`
	SoinID       *string `json:"soin_id" validate:"omitempty,uuid"`
	Nom          string  `json:"nom" validate:"required"`
	Dosage       string  `json:"dosage" validate:"required"`
	Frequence    string  `json:"frequence"`
	DureeJours   *int    `json:"duree_jours" validate:"omitempty,gt=0"`
}

// PatchMedicamentRequest mise à jour partielle, le rattachement ne change pas
type PatchMedicamentRequest struct {
	Nom        *string `json:"nom"`
	Dosage     *string `json:"dosage"`
	Frequence  *string `json:"frequence"`
	DureeJours *int    `json:"duree_jours" validate:"omitempty,gt=0"`
}

// MedicamentResponse représentation API d'un médicament
type MedicamentResponse struct {
	ID           string    `json:"id"`
	OrdonnanceID *string   `json:"ordonnance_id"`
	SoinID       *string   `json:"soin_id"`
	Nom          string    `json:"nom"`
	Dosage       string    `json:"dosage"`
	Frequence    string    `json:"frequence"`
	DureeJours   *int      `json:"duree_jours"`
	CreatedAt    time.Time `json:"created_at"`
}
