package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getterFrom(values map[string]string) Getter {
	return func(param string) (string, bool) {
		v, ok := values[param]
		return v, ok
	}
}

var consultationFilters = NewSet(
	Spec{Param: "diagnostic", Column: "c.diagnostic", Kind: Contains},
	Spec{Param: "medecin_id", Column: "c.medecin_id", Kind: Equals},
	Spec{Param: "date_debut", Column: "c.date_consultation", Kind: DateFrom},
	Spec{Param: "date_fin", Column: "c.date_consultation", Kind: DateTo},
)

func TestBuild_AucunParametre(t *testing.T) {
	clause, args := consultationFilters.Build(getterFrom(nil), 1)

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestBuild_ParametresInconnusIgnores(t *testing.T) {
	clause, args := consultationFilters.Build(getterFrom(map[string]string{
		"foo": "bar",
		"sql": "'; DROP TABLE --",
	}), 1)

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestBuild_EgaliteEtSousChaine(t *testing.T) {
	clause, args := consultationFilters.Build(getterFrom(map[string]string{
		"diagnostic": "grippe",
		"medecin_id": "abc-123",
	}), 3)

	assert.Equal(t, " AND c.diagnostic ILIKE '%' || $3 || '%' AND c.medecin_id = $4", clause)
	assert.Equal(t, []interface{}{"grippe", "abc-123"}, args)
}

func TestBuild_PlageDeDates(t *testing.T) {
	clause, args := consultationFilters.Build(getterFrom(map[string]string{
		"date_debut": "2026-01-01",
		"date_fin":   "2026-06-30",
	}), 1)

	assert.Equal(t, " AND c.date_consultation >= $1::date AND c.date_consultation <= $2::date", clause)
	assert.Equal(t, []interface{}{"2026-01-01", "2026-06-30"}, args)
}

func TestBuild_ValeurVideNonFiltree(t *testing.T) {
	clause, args := consultationFilters.Build(getterFrom(map[string]string{
		"diagnostic": "   ",
	}), 1)

	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestBuild_ValeursTrimmees(t *testing.T) {
	_, args := consultationFilters.Build(getterFrom(map[string]string{
		"diagnostic": "  paludisme ",
	}), 1)

	assert.Equal(t, []interface{}{"paludisme"}, args)
}

func TestApplied(t *testing.T) {
	applied := consultationFilters.Applied(getterFrom(map[string]string{
		"diagnostic": "grippe",
		"date_debut": "2026-01-01",
		"inconnu":    "x",
	}))

	assert.Equal(t, []string{"diagnostic", "date_debut"}, applied)
}
