package combat

import (
	"fmt"
	"strings"
)

// Roll selects where in the 217..255 (/255) damage band the result falls.
type Roll uint8

const (
	RollMin Roll = iota
	RollAverage
	RollMax
	RollRandom
)

// Damage band numerators, all over RollDenominator.
const (
	RollMinNumerator     = 217
	RollAverageNumerator = 236
	RollMaxNumerator     = 255
	RollDenominator      = 255
)

func (r Roll) String() string {
	switch r {
	case RollMin:
		return "min"
	case RollAverage:
		return "average"
	case RollMax:
		return "max"
	case RollRandom:
		return "random"
	default:
		return fmt.Sprintf("Roll(%d)", uint8(r))
	}
}

// ParseRoll parses "min", "average" ("avg"), "max" or "random".
func ParseRoll(s string) (Roll, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return RollMin, nil
	case "average", "avg":
		return RollAverage, nil
	case "max":
		return RollMax, nil
	case "random", "rand":
		return RollRandom, nil
	default:
		return 0, fmt.Errorf("unknown roll variant %q", s)
	}
}

// ApplyRoll scales damage by the roll's fraction with integer truncation.
// RollRandom draws a fresh numerator in [217, 255] from rng on every call.
func ApplyRoll(damage uint32, roll Roll, rng Rand) uint32 {
	var num uint32
	switch roll {
	case RollMin:
		num = RollMinNumerator
	case RollAverage:
		num = RollAverageNumerator
	case RollMax:
		return damage
	case RollRandom:
		if rng == nil {
			rng = DefaultRand
		}
		num = RollMinNumerator + uint32(rng.IntN(RollMaxNumerator-RollMinNumerator+1))
	default:
		violate("ApplyRoll", "unknown roll variant %d", roll)
	}
	return damage * num / RollDenominator
}
