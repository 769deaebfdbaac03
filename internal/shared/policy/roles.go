package policy

// Rôles principaux portés par chaque compte utilisateur
const (
	RoleAdmin         = "admin"
	RoleTechnicien    = "technicien"
	RolePatient       = "patient"
	RoleAdministratif = "administratif"
)

// Rôles métier des profils techniques (techniciens uniquement)
const (
	MetierMedecin      = "medecin"
	MetierInfirmier    = "infirmier"
	MetierLaborantin   = "laborantin"
	MetierRadiologue   = "radiologue"
	MetierAnesthesiste = "anesthesiste"
	MetierSageFemme    = "sage_femme"
)

// RolesValides liste les rôles principaux reconnus
var RolesValides = []string{RoleAdmin, RoleTechnicien, RolePatient, RoleAdministratif}

// MetiersValides liste les rôles métier reconnus pour un profil technique
var MetiersValides = []string{
	MetierMedecin,
	MetierInfirmier,
	MetierLaborantin,
	MetierRadiologue,
	MetierAnesthesiste,
	MetierSageFemme,
}

// IsRoleValide vérifie qu'un rôle principal fait partie des rôles reconnus
func IsRoleValide(role string) bool {
	for _, r := range RolesValides {
		if r == role {
			return true
		}
	}
	return false
}

// IsMetierValide vérifie qu'un rôle métier fait partie des spécialités reconnues
func IsMetierValide(metier string) bool {
	for _, m := range MetiersValides {
		if m == metier {
			return true
		}
	}
	return false
}
