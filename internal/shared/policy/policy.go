package policy

import (
	"github.com/google/uuid"
)

// Identite représente l'identité agissante transmise explicitement aux
// vérifications d'autorisation. RoleMetier est nil pour les comptes sans
// profil technique (admin, administratif, patient).
type Identite struct {
	ID         uuid.UUID
	Email      string
	Role       string
	RoleMetier *string
}

// Combinator définit la combinaison des deux filtres de rôles.
// Historiquement la vérification était implicitement "OU" partout ; le
// combinator rend le choix explicite par endpoint.
type Combinator int

const (
	// CombinatorOR autorise si le rôle principal OU le rôle métier correspond
	CombinatorOR Combinator = iota
	// CombinatorAND exige que chaque filtre fourni soit satisfait
	CombinatorAND
)

// Requirement décrit les rôles exigés pour une opération.
// Un filtre vide (nil ou longueur zéro) est considéré comme non fourni.
type Requirement struct {
	Roles       []string
	RolesMetier []string
	Combinator  Combinator
}

// Allow évalue une exigence de rôles pour une identité.
// Fonction pure : aucune erreur, aucun effet de bord. Un profil technique
// absent vaut refus dès qu'un filtre métier est fourni.
func Allow(identite Identite, req Requirement) bool {
	roleFilter := len(req.Roles) > 0
	metierFilter := len(req.RolesMetier) > 0

	// Aucun filtre fourni : accès libre
	if !roleFilter && !metierFilter {
		return true
	}

	roleOK := roleFilter && contains(req.Roles, identite.Role)
	metierOK := metierFilter && identite.RoleMetier != nil && contains(req.RolesMetier, *identite.RoleMetier)

	if req.Combinator == CombinatorAND {
		if roleFilter && !roleOK {
			return false
		}
		if metierFilter && !metierOK {
			return false
		}
		return true
	}

	// CombinatorOR : un seul filtre satisfait suffit
	return roleOK || metierOK
}

// RequireRoles construit une exigence sur les rôles principaux uniquement
func RequireRoles(roles ...string) Requirement {
	return Requirement{Roles: roles, Combinator: CombinatorOR}
}

// RequireMetiers construit une exigence sur les rôles métier uniquement.
// Seul un technicien porteur d'un profil technique peut la satisfaire.
func RequireMetiers(metiers ...string) Requirement {
	return Requirement{RolesMetier: metiers, Combinator: CombinatorAND}
}

// RequireAny construit une exigence "rôle principal OU rôle métier"
func RequireAny(roles []string, metiers []string) Requirement {
	return Requirement{Roles: roles, RolesMetier: metiers, Combinator: CombinatorOR}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
