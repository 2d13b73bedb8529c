// Package typechart answers "what multiplier does type A deal to type B"
// for the Generation 1 type chart.
//
// Two lookup strategies are provided: Effectiveness scans the pair tables,
// EffectivenessFast uses per-attacker bit rows. Both are built from the same
// tables and must agree for every input.
package typechart

import "github.com/udisondev/gen1calc/internal/model"

// Relation classifies an ordered (attacker, defender) type pair.
type Relation uint8

const (
	Neutral Relation = iota
	SuperEffective
	NotVeryEffective
	Immune
)

// Factor returns the damage multiplier of a single relation.
func (r Relation) Factor() float64 {
	switch r {
	case SuperEffective:
		return 2
	case NotVeryEffective:
		return 0.5
	case Immune:
		return 0
	default:
		return 1
	}
}

func (r Relation) String() string {
	switch r {
	case SuperEffective:
		return "SuperEffective"
	case NotVeryEffective:
		return "NotVeryEffective"
	case Immune:
		return "Immune"
	default:
		return "Neutral"
	}
}

type typePair struct {
	atk, def model.Type
}

// Gen 1 type chart. Pairs are (attacking type, defending type).
// Includes the Gen 1 quirks: Ghost has no effect on Psychic, Bug is super
// effective against Poison, Ice is neutral against Fire.
var superEffective = [38]typePair{
	{model.TypeFire, model.TypeGrass},
	{model.TypeFire, model.TypeIce},
	{model.TypeFire, model.TypeBug},
	{model.TypeWater, model.TypeFire},
	{model.TypeWater, model.TypeGround},
	{model.TypeWater, model.TypeRock},
	{model.TypeElectric, model.TypeWater},
	{model.TypeElectric, model.TypeFlying},
	{model.TypeGrass, model.TypeWater},
	{model.TypeGrass, model.TypeGround},
	{model.TypeGrass, model.TypeRock},
	{model.TypeIce, model.TypeGrass},
	{model.TypeIce, model.TypeGround},
	{model.TypeIce, model.TypeFlying},
	{model.TypeIce, model.TypeDragon},
	{model.TypeFighting, model.TypeNormal},
	{model.TypeFighting, model.TypeIce},
	{model.TypeFighting, model.TypeRock},
	{model.TypePoison, model.TypeGrass},
	{model.TypePoison, model.TypeBug},
	{model.TypeGround, model.TypeFire},
	{model.TypeGround, model.TypeElectric},
	{model.TypeGround, model.TypePoison},
	{model.TypeGround, model.TypeRock},
	{model.TypeFlying, model.TypeGrass},
	{model.TypeFlying, model.TypeFighting},
	{model.TypeFlying, model.TypeBug},
	{model.TypePsychic, model.TypeFighting},
	{model.TypePsychic, model.TypePoison},
	{model.TypeBug, model.TypeGrass},
	{model.TypeBug, model.TypePoison},
	{model.TypeBug, model.TypePsychic},
	{model.TypeRock, model.TypeFire},
	{model.TypeRock, model.TypeIce},
	{model.TypeRock, model.TypeFlying},
	{model.TypeRock, model.TypeBug},
	{model.TypeGhost, model.TypeGhost},
	{model.TypeDragon, model.TypeDragon},
}

var notVeryEffective = [38]typePair{
	{model.TypeNormal, model.TypeRock},
	{model.TypeFire, model.TypeFire},
	{model.TypeFire, model.TypeWater},
	{model.TypeFire, model.TypeRock},
	{model.TypeFire, model.TypeDragon},
	{model.TypeWater, model.TypeWater},
	{model.TypeWater, model.TypeGrass},
	{model.TypeWater, model.TypeDragon},
	{model.TypeElectric, model.TypeElectric},
	{model.TypeElectric, model.TypeGrass},
	{model.TypeElectric, model.TypeDragon},
	{model.TypeGrass, model.TypeFire},
	{model.TypeGrass, model.TypeGrass},
	{model.TypeGrass, model.TypePoison},
	{model.TypeGrass, model.TypeFlying},
	{model.TypeGrass, model.TypeBug},
	{model.TypeGrass, model.TypeDragon},
	{model.TypeIce, model.TypeWater},
	{model.TypeIce, model.TypeIce},
	{model.TypeFighting, model.TypePoison},
	{model.TypeFighting, model.TypeFlying},
	{model.TypeFighting, model.TypePsychic},
	{model.TypeFighting, model.TypeBug},
	{model.TypePoison, model.TypePoison},
	{model.TypePoison, model.TypeGround},
	{model.TypePoison, model.TypeRock},
	{model.TypePoison, model.TypeGhost},
	{model.TypeGround, model.TypeGrass},
	{model.TypeGround, model.TypeBug},
	{model.TypeFlying, model.TypeElectric},
	{model.TypeFlying, model.TypeRock},
	{model.TypePsychic, model.TypePsychic},
	{model.TypeBug, model.TypeFire},
	{model.TypeBug, model.TypeFighting},
	{model.TypeBug, model.TypeFlying},
	{model.TypeBug, model.TypeGhost},
	{model.TypeRock, model.TypeFighting},
	{model.TypeRock, model.TypeGround},
}

var immune = [6]typePair{
	{model.TypeNormal, model.TypeGhost},
	{model.TypeElectric, model.TypeGround},
	{model.TypeFighting, model.TypeGhost},
	{model.TypeGround, model.TypeFlying},
	{model.TypeGhost, model.TypeNormal},
	{model.TypeGhost, model.TypePsychic},
}
