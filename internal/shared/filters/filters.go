package filters

import (
	"fmt"
	"strings"
)

// Kind type de comparaison appliquée à un champ de recherche
type Kind int

const (
	// Equals égalité stricte sur la colonne
	Equals Kind = iota
	// Contains sous-chaîne insensible à la casse (ILIKE)
	Contains
	// DateFrom borne basse incluse sur une colonne date
	DateFrom
	// DateTo borne haute incluse sur une colonne date
	DateTo
)

// Spec décrit un filtre déclaratif : paramètre de requête → colonne SQL.
// Les paramètres non déclarés sont ignorés, les paramètres déclarés mais
// absents de la requête ne filtrent pas.
type Spec struct {
	Param  string
	Column string
	Kind   Kind
}

// Set ensemble ordonné de filtres pour une collection donnée
type Set struct {
	specs []Spec
}

// NewSet construit un ensemble de filtres déclaratifs
func NewSet(specs ...Spec) *Set {
	return &Set{specs: specs}
}

// Getter retourne la valeur d'un paramètre de requête et sa présence
type Getter func(param string) (string, bool)

// Build génère les fragments WHERE et les arguments positionnels à partir
// des paramètres présents. argOffset est l'index du premier placeholder
// ($1 pour offset 1). Le fragment retourné commence par " AND" ou est vide.
func (s *Set) Build(get Getter, argOffset int) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	n := argOffset
	for _, spec := range s.specs {
		value, ok := get(spec.Param)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		switch spec.Kind {
		case Contains:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", spec.Column, n))
		case DateFrom:
			clauses = append(clauses, fmt.Sprintf("%s >= $%d::date", spec.Column, n))
		case DateTo:
			clauses = append(clauses, fmt.Sprintf("%s <= $%d::date", spec.Column, n))
		default:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", spec.Column, n))
		}

		args = append(args, strings.TrimSpace(value))
		n++
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " AND " + strings.Join(clauses, " AND "), args
}

// Applied retourne les noms des paramètres effectivement filtrés,
// pour enrichir les métadonnées de recherche
func (s *Set) Applied(get Getter) []string {
	var applied []string
	for _, spec := range s.specs {
		if value, ok := get(spec.Param); ok && strings.TrimSpace(value) != "" {
			applied = append(applied, spec.Param)
		}
	}
	return applied
}
