package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identite(role string, metier *string) Identite {
	return Identite{ID: uuid.New(), Email: "test@hopital.ci", Role: role, RoleMetier: metier}
}

func ptr(s string) *string { return &s }

func TestAllow_AucunFiltre(t *testing.T) {
	assert.True(t, Allow(identite(RolePatient, nil), Requirement{}))
	assert.True(t, Allow(identite(RoleAdmin, nil), Requirement{Combinator: CombinatorAND}))
}

func TestAllow_RolePrincipalSeul(t *testing.T) {
	req := RequireRoles(RoleAdmin, RoleAdministratif)

	assert.True(t, Allow(identite(RoleAdmin, nil), req))
	assert.True(t, Allow(identite(RoleAdministratif, nil), req))
	assert.False(t, Allow(identite(RolePatient, nil), req))
	assert.False(t, Allow(identite(RoleTechnicien, ptr(MetierMedecin)), req))
}

func TestAllow_RoleMetierSeul(t *testing.T) {
	req := RequireMetiers(MetierMedecin)

	assert.True(t, Allow(identite(RoleTechnicien, ptr(MetierMedecin)), req))
	assert.False(t, Allow(identite(RoleTechnicien, ptr(MetierInfirmier)), req))

	// Profil technique absent : refus systématique
	assert.False(t, Allow(identite(RoleAdmin, nil), req))
	assert.False(t, Allow(identite(RolePatient, nil), req))
}

func TestAllow_CombinatorOR(t *testing.T) {
	req := RequireAny([]string{RoleAdmin}, []string{MetierMedecin, MetierInfirmier})

	// Passe par le rôle principal
	assert.True(t, Allow(identite(RoleAdmin, nil), req))
	// Passe par le rôle métier
	assert.True(t, Allow(identite(RoleTechnicien, ptr(MetierInfirmier)), req))
	// Aucun des deux
	assert.False(t, Allow(identite(RoleAdministratif, nil), req))
	assert.False(t, Allow(identite(RoleTechnicien, ptr(MetierLaborantin)), req))
}

func TestAllow_CombinatorAND(t *testing.T) {
	req := Requirement{
		Roles:       []string{RoleTechnicien},
		RolesMetier: []string{MetierMedecin},
		Combinator:  CombinatorAND,
	}

	assert.True(t, Allow(identite(RoleTechnicien, ptr(MetierMedecin)), req))
	// Rôle principal seul insuffisant en mode AND
	assert.False(t, Allow(identite(RoleTechnicien, ptr(MetierRadiologue)), req))
	assert.False(t, Allow(identite(RoleTechnicien, nil), req))
	// Rôle métier correct mais rôle principal hors filtre
	assert.False(t, Allow(identite(RoleAdmin, ptr(MetierMedecin)), req))
}

func TestAllow_ToutRoleHorsFiltreRefuse(t *testing.T) {
	// Propriété : toute identité hors des deux ensembles est refusée
	req := RequireAny([]string{RoleAdmin}, []string{MetierLaborantin})

	for _, role := range []string{RolePatient, RoleAdministratif, RoleTechnicien} {
		assert.False(t, Allow(identite(role, nil), req), "role %s sans profil doit être refusé", role)
	}
	for _, metier := range []string{MetierMedecin, MetierInfirmier, MetierRadiologue} {
		assert.False(t, Allow(identite(RoleTechnicien, ptr(metier)), req), "metier %s doit être refusé", metier)
	}
}

func TestIsRoleValide(t *testing.T) {
	assert.True(t, IsRoleValide(RoleTechnicien))
	assert.False(t, IsRoleValide("superviseur"))
}

func TestIsMetierValide(t *testing.T) {
	assert.True(t, IsMetierValide(MetierSageFemme))
	assert.False(t, IsMetierValide("chirurgien"))
}
