package combat

import (
	"math"
	"strings"

	"github.com/udisondev/gen1calc/internal/game/typechart"
	"github.com/udisondev/gen1calc/internal/model"
)

// STABMultiplier is the same-type attack bonus.
const STABMultiplier = 1.5

// selfDestructMoves halve the target's Defense before the main formula.
// Keys are normalized by normalizeMoveName.
var selfDestructMoves = map[string]struct{}{
	"selfdestruct": {},
	"explosion":    {},
}

func normalizeMoveName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// IsSelfDestructMove reports whether the named move halves the target's Defense.
func IsSelfDestructMove(name string) bool {
	_, ok := selfDestructMoves[normalizeMoveName(name)]
	return ok
}

// CalcDamage computes Gen 1 damage using DefaultRand for RollRandom.
// See CalcDamageRand.
func CalcDamage(attacker, defender *model.Combatant, move *model.Move, isCrit bool, roll Roll) uint32 {
	return CalcDamageRand(attacker, defender, move, isCrit, roll, DefaultRand)
}

// CalcDamageRand computes the damage dealt by move from attacker to defender.
//
// Pipeline (order matters):
//  1. power 0 → 0
//  2. STAB ×1.5 when move type matches either attacker slot
//  3. crit doubles the level term
//  4-7. EffectiveStats: stat selection, stages (skipped on crit), burn, self-destruct
//  8. BaseDamage (integer arithmetic, truncating)
//  9. floor(base × STAB × type effectiveness)
//  10. ApplyRoll
//
// Inputs are never mutated. Panics with *ContractViolation on invalid data.
func CalcDamageRand(attacker, defender *model.Combatant, move *model.Move, isCrit bool, roll Roll, rng Rand) uint32 {
	if attacker == nil || defender == nil || move == nil {
		violate("CalcDamage", "nil attacker, defender or move")
	}

	if move.Power == 0 {
		return 0
	}

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = STABMultiplier
	}

	atk, def := EffectiveStats(attacker, defender, move, isCrit)
	base := BaseDamage(attacker.Stats.Level, isCrit, move.Power, atk, def)

	effectiveness := typechart.EffectivenessFast(move.Type, defender.Types)
	damage := uint32(math.Floor(float64(base) * stab * effectiveness))

	return ApplyRoll(damage, roll, rng)
}

// CalcDamageRange returns the Min and Max roll damage for the given matchup.
func CalcDamageRange(attacker, defender *model.Combatant, move *model.Move, isCrit bool) (lo, hi uint32) {
	lo = CalcDamageRand(attacker, defender, move, isCrit, RollMin, nil)
	hi = CalcDamageRand(attacker, defender, move, isCrit, RollMax, nil)
	return lo, hi
}

// EffectiveStats returns the attack and defense values fed into BaseDamage.
//
// Physical moves use Attack vs Defense, Special moves use Special vs Special.
// Stages apply only when isCrit is false; a crit uses raw stats.
// Burn halves a physical attacker's (staged) Attack, floor 1.
// Self-Destruct and Explosion halve the (staged) Defense, floor 1.
func EffectiveStats(attacker, defender *model.Combatant, move *model.Move, isCrit bool) (atk, def uint32) {
	var (
		rawAtk, rawDef     uint8
		atkStage, defStage int8
	)

	switch move.Category {
	case model.CategoryPhysical:
		rawAtk, atkStage = attacker.Stats.Attack, attacker.Stages.Attack
		rawDef, defStage = defender.Stats.Defense, defender.Stages.Defense
	case model.CategorySpecial:
		rawAtk, atkStage = attacker.Stats.Special, attacker.Stages.Special
		rawDef, defStage = defender.Stats.Special, defender.Stages.Special
	case model.CategoryStatus:
		violate("EffectiveStats", "status move %q has power %d", move.Name, move.Power)
	default:
		violate("EffectiveStats", "move %q has unknown category %d", move.Name, move.Category)
	}

	if isCrit {
		if rawAtk == 0 || rawDef == 0 {
			violate("EffectiveStats", "zero base stat on critical hit (atk=%d def=%d)", rawAtk, rawDef)
		}
		atk, def = uint32(rawAtk), uint32(rawDef)
	} else {
		atk = uint32(StatStageModifier(rawAtk, atkStage))
		def = uint32(StatStageModifier(rawDef, defStage))
	}

	if move.Category == model.CategoryPhysical && attacker.Status.IsBurned() {
		atk = halveFloor1(atk)
	}

	if IsSelfDestructMove(move.Name) {
		def = halveFloor1(def)
	}

	return atk, def
}

func halveFloor1(v uint32) uint32 {
	v /= 2
	if v < 1 {
		v = 1
	}
	return v
}

// BaseDamage evaluates the integer core of the formula:
//
//	((2 × level × crit / 5 + 2) × power × atk) / (def × 50) + 2
//
// where crit is 2 on a critical hit, 1 otherwise. Every division truncates.
func BaseDamage(level uint8, isCrit bool, power uint8, atk, def uint32) uint32 {
	if def == 0 {
		violate("BaseDamage", "defense stat is zero")
	}
	crit := uint32(1)
	if isCrit {
		crit = 2
	}
	levelTerm := 2*uint32(level)*crit/5 + 2
	return levelTerm*uint32(power)*atk/(def*50) + 2
}
