package dto

import "time"

// CreateExamenBioRequest prescrit un examen biologique
type CreateExamenBioRequest struct {
	DossierID    string `json:"dossier_id" validate:"required,uuid"`
	LaborantinID string `json:"laborantin_id" validate:"required,uuid"`
	TypeExamen   string `json:"type_examen" validate:"required"`
	DateExamen   string `json:"date_examen" validate:"required,datetime=2006-01-02"`
}

// ReplaceExamenBioRequest remplacement complet d'un examen biologique
type ReplaceExamenBioRequest struct {
	TypeExamen string `json:"type_examen" validate:"required"`
	DateExamen string `json:"date_examen" validate:"required,datetime=2006-01-02"`
	Statut     string `json:"statut" validate:"required,oneof=en_attente en_cours termine"`
}

// PatchExamenBioRequest mise à jour partielle d'un examen biologique
type PatchExamenBioRequest struct {
	TypeExamen *string `json:"type_examen"`
	DateExamen *string `json:"date_examen" validate:"omitempty,datetime=2006-01-02"`
	Statut     *string `json:"statut" validate:"omitempty,oneof=en_attente en_cours termine"`
}

// ExamenBioResponse représentation API d'un examen biologique
type ExamenBioResponse struct {
	ID           string             `json:"id"`
	DossierID    string             `json:"dossier_id"`
	LaborantinID *string            `json:"laborantin_id"`
	TypeExamen   string             `json:"type_examen"`
	DateExamen   string             `json:"date_examen"`
	Statut       string             `json:"statut"`
	Resultats    []ResultatResponse `json:"resultats"`
	CreatedAt    time.Time          `json:"created_at"`
}

// CreateResultatRequest consigne un résultat d'examen biologique
type CreateResultatRequest struct {
	ExamenBiologiqueID string `json:"examen_biologique_id" validate:"required,uuid"`
	LaborantinID       string `json:"laborantin_id" validate:"required,uuid"`
	Contenu            string `json:"contenu" validate:"required"`
	DateResultat       string `json:"date_resultat" validate:"required,datetime=2006-01-02"`
}

// PatchResultatRequest mise à jour partielle d'un résultat
type PatchResultatRequest struct {
	Contenu      *string `json:"contenu"`
	DateResultat *string `json:"date_resultat" validate:"omitempty,datetime=2006-01-02"`
}

// ResultatResponse représentation API d'un résultat d'examen
type ResultatResponse struct {
	ID                 string    `json:"id"`
	ExamenBiologiqueID string    `json:"examen_biologique_id"`
	LaborantinID       *string   `json:"laborantin_id"`
	Contenu            string    `json:"contenu"`
	DateResultat       string    `json:"date_resultat"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateExamenRadioRequest prescrit un examen radiologique
type CreateExamenRadioRequest struct {
	DossierID    string `json:"dossier_id" validate:"required,uuid"`
	RadiologueID string `json:"radiologue_id" validate:"required,uuid"`
	TypeExamen   string `json:"type_examen" validate:"required"`
	DateExamen   string `json:"date_examen" validate:"required,datetime=2006-01-02"`
}

// ReplaceExamenRadioRequest remplacement complet d'un examen radiologique
type ReplaceExamenRadioRequest struct {
	TypeExamen string `json:"type_examen" validate:"required"`
	DateExamen string `json:"date_examen" validate:"required,datetime=2006-01-02"`
	Statut     string `json:"statut" validate:"required,oneof=en_attente en_cours termine"`
}

// PatchExamenRadioRequest mise à jour partielle d'un examen radiologique
type PatchExamenRadioRequest struct {
	TypeExamen *string `json:"type_examen"`
	DateExamen *string `json:"date_examen" validate:"omitempty,datetime=2006-01-02"`
	Statut     *string `json:"statut" validate:"omitempty,oneof=en_attente en_cours termine"`
}

// ExamenRadioResponse représentation API d'un examen radiologique
type ExamenRadioResponse struct {
	ID           string          `json:"id"`
	DossierID    string          `json:"dossier_id"`
	RadiologueID *string         `json:"radiologue_id"`
	TypeExamen   string          `json:"type_examen"`
	DateExamen   string          `json:"date_examen"`
	Statut       string          `json:"statut"`
	Images       []ImageResponse `json:"images"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ImageResponse représentation API d'une image radiologique
type ImageResponse struct {
	ID                   string    `json:"id"`
	ExamenRadiologiqueID string    `json:"examen_radiologique_id"`
	RadiologueID         *string   `json:"radiologue_id"`
	FichierURL           string    `json:"fichier_url"`
	CreatedAt            time.Time `json:"created_at"`
}
