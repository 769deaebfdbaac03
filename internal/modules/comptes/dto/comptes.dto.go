package dto

import "time"

// CreateUtilisateurRequest création d'un compte du personnel
type CreateUtilisateurRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
	Nom       string `json:"nom" validate:"required"`
	Prenoms   string `json:"prenoms" validate:"required"`
	Telephone string `json:"telephone"`
}

// UpdateUtilisateurRequest mise à jour partielle d'un compte.
// Seuls les champs soumis changent.
type UpdateUtilisateurRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	Nom       *string `json:"nom"`
	Prenoms   *string `json:"prenoms"`
	Telephone *string `json:"telephone"`
	Statut    *string `json:"statut"`
}

// CreateProfilTechniqueRequest rattache un rôle métier à un technicien
type CreateProfilTechniqueRequest struct {
	RoleMetier string   `json:"role_metier" validate:"required"`
	Outils     []string `json:"outils"`
}

// UpdateProfilTechniqueRequest mise à jour du profil technique
type UpdateProfilTechniqueRequest struct {
	RoleMetier *string  `json:"role_metier"`
	Outils     []string `json:"outils"`
}

// UtilisateurResponse représentation API d'un compte
type UtilisateurResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Nom        string    `json:"nom"`
	Prenoms    string    `json:"prenoms"`
	Telephone  string    `json:"telephone"`
	Statut     string    `json:"statut"`
	ProfilID   *string   `json:"profil_technique_id,omitempty"`
	RoleMetier *string   `json:"role_metier,omitempty"`
	Outils     []string  `json:"outils,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
