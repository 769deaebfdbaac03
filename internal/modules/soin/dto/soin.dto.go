package dto

import "time"

// CreateSoinRequest enregistre un soin infirmier dans un dossier
type CreateSoinRequest struct {
	DossierID   string `json:"dossier_id" validate:"required,uuid"`
	InfirmierID string `json:"infirmier_id" validate:"required,uuid"`
	DateSoin    string `json:"date_soin" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
	Observation string `json:"observation"`
}

// ReplaceSoinRequest remplacement complet des champs du soin
type ReplaceSoinRequest struct {
	DateSoin    string `json:"date_soin" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
	Observation string `json:"observation"`
}

// PatchSoinRequest mise à jour partielle d'un soin
type PatchSoinRequest struct {
	DateSoin    *string `json:"date_soin" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
	Observation *string `json:"observation"`
}

// SoinResponse représentation API d'un soin infirmier
type SoinResponse struct {
	ID          string    `json:"id"`
	DossierID   string    `json:"dossier_id"`
	InfirmierID *string   `json:"infirmier_id"`
	DateSoin    string    `json:"date_soin"`
	Description string    `json:"description"`
	Observation string    `json:"observation"`
	CreatedAt   time.Time `json:"created_at"`
}
