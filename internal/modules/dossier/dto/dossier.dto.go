package dto

import "time"

// CreatePatientRequest crée en une opération le compte patient,
// sa fiche administrative et son dossier médical
type CreatePatientRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Nom           string  `json:"nom" validate:"required"`
	Prenoms       string  `json:"prenoms" validate:"required"`
	Telephone     string  `json:"telephone"`
	NSS           string  `json:"nss" validate:"required"`
	DateNaissance string  `json:"date_naissance" validate:"required,datetime=2006-01-02"`
	Sexe          string  `json:"sexe" validate:"required,oneof=M F"`
	Adresse       string  `json:"adresse"`
	MedecinID     *string `json:"medecin_traitant_id"`
}

// UpdatePatientRequest met à jour la fiche administrative du patient.
// Seuls les champs soumis changent, le QR code est régénéré.
type UpdatePatientRequest struct {
	Nom           *string `json:"nom"`
	Prenoms       *string `json:"prenoms"`
	Telephone     *string `json:"telephone"`
	NSS           *string `json:"nss"`
	DateNaissance *string `json:"date_naissance" validate:"omitempty,datetime=2006-01-02"`
	Sexe          *string `json:"sexe" validate:"omitempty,oneof=M F"`
	Adresse       *string `json:"adresse"`
	MedecinID     *string `json:"medecin_traitant_id"`
}

// DossierResponse vue complète d'un dossier patient
type DossierResponse struct {
	ID        string          `json:"id"`
	QRCodeURL string          `json:"qr_code_url"`
	Patient   PatientResponse `json:"patient"`
	CreatedAt time.Time       `json:"created_at"`
}

// PatientResponse fiche administrative du patient
type PatientResponse struct {
	ID            string  `json:"id"`
	UtilisateurID string  `json:"utilisateur_id"`
	Email         string  `json:"email"`
	Nom           string  `json:"nom"`
	Prenoms       string  `json:"prenoms"`
	Telephone     string  `json:"telephone"`
	NSS           string  `json:"nss"`
	DateNaissance string  `json:"date_naissance"`
	Sexe          string  `json:"sexe"`
	Adresse       string  `json:"adresse"`
	MedecinID     *string `json:"medecin_traitant_id"`
}
