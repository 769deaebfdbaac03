package dto

import "time"

// CreateConsultationRequest enregistre une consultation dans un dossier
type CreateConsultationRequest struct {
	DossierID        string `json:"dossier_id" validate:"required,uuid"`
	MedecinID        string `json:"medecin_id" validate:"required,uuid"`
	DateConsultation string `json:"date_consultation" validate:"required,datetime=2006-01-02"`
	Motif            string `json:"motif" validate:"required"`
	Diagnostic       string `json:"diagnostic"`
	Notes            string `json:"notes"`
}

// ReplaceConsultationRequest remplacement complet des champs cliniques,
// le dossier de rattachement ne change jamais
type ReplaceConsultationRequest struct {
	DateConsultation string `json:"date_consultation" validate:"required,datetime=2006-01-02"`
	Motif            string `json:"motif" validate:"required"`
	Diagnostic       string `json:"diagnostic"`
	Notes            string `json:"notes"`
}

// PatchConsultationRequest mise à jour partielle, les champs absents
// restent inchangés
type PatchConsultationRequest struct {
	DateConsultation *string `json:"date_consultation" validate:"omitempty,datetime=2006-01-02"`
	Motif            *string `json:"motif"`
	Diagnostic       *string `json:"diagnostic"`
	Notes            *string `json:"notes"`
}

// ConsultationResponse représentation API d'une consultation
type ConsultationResponse struct {
	ID               string    `json:"id"`
	DossierID        string    `json:"dossier_id"`
	MedecinID        *string   `json:"medecin_id"`
	DateConsultation string    `json:"date_consultation"`
	Motif            string    `json:"motif"`
	Diagnostic       string    `json:"diagnostic"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateCertificatRequest établit un certificat médical
type CreateCertificatRequest struct {
	DossierID       string `json:"dossier_id" validate:"required,uuid"`
	MedecinID       string `json:"medecin_id" validate:"required,uuid"`
	Contenu         string `json:"contenu" validate:"required"`
	DureeReposJours int    `json:"duree_repos_jours" validate:"gte=0"`
}

// ReplaceCertificatRequest remplacement complet d'un certificat
type ReplaceCertificatRequest struct {
	Contenu         string `json:"contenu" validate:"required"`
	DureeReposJours int    `json:"duree_repos_jours" validate:"gte=0"`
}

// PatchCertificatRequest mise à jour partielle d'un certificat
type PatchCertificatRequest struct {
	Contenu         *string `json:"contenu"`
	DureeReposJours *int    `json:"duree_repos_jours" validate:"omitempty,gte=0"`
}

// CertificatResponse représentation API d'un certificat
type CertificatResponse struct {
	ID              string    `json:"id"`
	DossierID       string    `json:"dossier_id"`
	MedecinID       *string   `json:"medecin_id"`
	Contenu         string    `json:"contenu"`
	DureeReposJours int       `json:"duree_repos_jours"`
	CreatedAt       time.Time `json:"created_at"`
}
