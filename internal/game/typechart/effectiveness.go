package typechart

import "github.com/udisondev/gen1calc/internal/model"

func containsPair(pairs []typePair, atk, def model.Type) bool {
	for _, p := range pairs {
		if p.atk == atk && p.def == def {
			return true
		}
	}
	return false
}

// RelationOf classifies a single (attacker, defender) pair by scanning the tables.
// Immunity wins over the other relations.
func RelationOf(atk, def model.Type) Relation {
	switch {
	case containsPair(immune[:], atk, def):
		return Immune
	case containsPair(superEffective[:], atk, def):
		return SuperEffective
	case containsPair(notVeryEffective[:], atk, def):
		return NotVeryEffective
	default:
		return Neutral
	}
}

// Effectiveness returns the multiplier of an attacking type against up to two
// defending types (def[1] may be model.TypeNone).
//
// Immunity against either slot returns 0 before anything is multiplied.
// Otherwise the result is the product of the per-slot factors, the sentinel
// slot being skipped. Result is one of 0, 0.25, 0.5, 1, 2, 4.
func Effectiveness(atk model.Type, def [2]model.Type) float64 {
	if containsPair(immune[:], atk, def[0]) || containsPair(immune[:], atk, def[1]) {
		return 0
	}

	multiplier := 1.0
	for _, d := range def {
		if d == model.TypeNone {
			continue
		}
		if containsPair(superEffective[:], atk, d) {
			multiplier *= 2
		} else if containsPair(notVeryEffective[:], atk, d) {
			multiplier *= 0.5
		}
	}
	return multiplier
}
