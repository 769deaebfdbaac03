package redis

import "fmt"

// KeyGenerator centralise la construction des clés Redis avec un préfixe
// par environnement : hopital_{env}_{domaine}:{identifiant}
type KeyGenerator struct {
	environment string
}

func NewKeyGenerator(environment string) *KeyGenerator {
	if environment == "" {
		environment = "development"
	}
	return &KeyGenerator{environment: environment}
}

// RefreshBlacklist clé d'un refresh token révoqué (logout)
func (g *KeyGenerator) RefreshBlacklist(token string) string {
	return fmt.Sprintf("hopital_%s_auth_blacklist:%s", g.environment, token)
}

// ProfilTechnique clé du cache du rôle métier d'un utilisateur
func (g *KeyGenerator) ProfilTechnique(userID string) string {
	return fmt.Sprintf("hopital_%s_auth_profil:%s", g.environment, userID)
}

// DossierCache clé du cache JSON d'un dossier patient
func (g *KeyGenerator) DossierCache(dossierID string) string {
	return fmt.Sprintf("hopital_%s_dossier_cache:%s", g.environment, dossierID)
}

// NSSIndex clé de l'index NSS → dossier id
func (g *KeyGenerator) NSSIndex(nss string) string {
	return fmt.Sprintf("hopital_%s_dossier_nss:%s", g.environment, nss)
}
