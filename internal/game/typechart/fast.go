package typechart

import "github.com/udisondev/gen1calc/internal/model"

// chartRow holds bit masks for one attacking type; bit N = defending type with ordinal N.
type chartRow struct {
	super  uint16
	weak   uint16
	immune uint16
}

// fastChart is indexed by attacking type ordinal. The sentinel row stays zero.
var fastChart = buildFastChart()

func buildFastChart() [model.TypeNone + 1]chartRow {
	var chart [model.TypeNone + 1]chartRow
	for _, p := range superEffective {
		chart[p.atk].super |= typeBit(p.def)
	}
	for _, p := range notVeryEffective {
		chart[p.atk].weak |= typeBit(p.def)
	}
	for _, p := range immune {
		chart[p.atk].immune |= typeBit(p.def)
	}
	return chart
}

// typeBit returns the mask bit of a defending type. The sentinel maps to 0,
// so it never matches a row.
func typeBit(t model.Type) uint16 {
	if !t.Valid() {
		return 0
	}
	return 1 << t
}

func fastRow(atk model.Type) chartRow {
	if int(atk) >= len(fastChart) {
		return chartRow{}
	}
	return fastChart[atk]
}

// RelationOfFast is the bit-set counterpart of RelationOf.
func RelationOfFast(atk, def model.Type) Relation {
	row := fastRow(atk)
	bit := typeBit(def)
	switch {
	case row.immune&bit != 0:
		return Immune
	case row.super&bit != 0:
		return SuperEffective
	case row.weak&bit != 0:
		return NotVeryEffective
	default:
		return Neutral
	}
}

// EffectivenessFast has the same contract as Effectiveness but resolves each
// pair with a constant-time mask test.
func EffectivenessFast(atk model.Type, def [2]model.Type) float64 {
	row := fastRow(atk)
	if row.immune&(typeBit(def[0])|typeBit(def[1])) != 0 {
		return 0
	}

	multiplier := 1.0
	for _, d := range def {
		bit := typeBit(d)
		if bit == 0 {
			continue
		}
		if row.super&bit != 0 {
			multiplier *= 2
		} else if row.weak&bit != 0 {
			multiplier *= 0.5
		}
	}
	return multiplier
}
