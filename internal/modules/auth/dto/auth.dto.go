package dto

// LoginRequest requête de connexion
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse réponse de connexion réussie. Le refresh token part dans
// un cookie http-only, jamais dans le corps.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   string          `json:"expires_at"`
	Utilisateur UtilisateurData `json:"utilisateur"`
}

// UtilisateurData informations du compte connecté
type UtilisateurData struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Nom        string  `json:"nom"`
	Prenoms    string  `json:"prenoms"`
	Role       string  `json:"role"`
	RoleMetier *string `json:"role_metier,omitempty"`
}

// RefreshResponse réponse du renouvellement d'access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}
