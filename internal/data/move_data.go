package data

import "github.com/udisondev/gen1calc/internal/model"

// moveDef: статическое описание приёма Gen 1.
type moveDef struct {
	name     string
	typ      model.Type
	power    uint8
	category model.Category
}

// moveDefs: Gen 1 moves with direct damage plus common status moves.
// Category follows the Gen 1 type split (see model.Type.IsSpecial).
var moveDefs = []moveDef{
	// Normal
	{"Tackle", model.TypeNormal, 35, model.CategoryPhysical},
	{"Scratch", model.TypeNormal, 40, model.CategoryPhysical},
	{"Quick Attack", model.TypeNormal, 40, model.CategoryPhysical},
	{"Headbutt", model.TypeNormal, 70, model.CategoryPhysical},
	{"Slash", model.TypeNormal, 70, model.CategoryPhysical},
	{"Strength", model.TypeNormal, 80, model.CategoryPhysical},
	{"Body Slam", model.TypeNormal, 85, model.CategoryPhysical},
	{"Double-Edge", model.TypeNormal, 100, model.CategoryPhysical},
	{"Hyper Beam", model.TypeNormal, 150, model.CategoryPhysical},
	{"Self-Destruct", model.TypeNormal, 130, model.CategoryPhysical},
	{"Explosion", model.TypeNormal, 170, model.CategoryPhysical},
	// Fire
	{"Ember", model.TypeFire, 40, model.CategorySpecial},
	{"Flamethrower", model.TypeFire, 95, model.CategorySpecial},
	{"Fire Blast", model.TypeFire, 120, model.CategorySpecial},
	// Water
	{"Water Gun", model.TypeWater, 40, model.CategorySpecial},
	{"Surf", model.TypeWater, 95, model.CategorySpecial},
	{"Hydro Pump", model.TypeWater, 120, model.CategorySpecial},
	// Electric
	{"Thunder Shock", model.TypeElectric, 40, model.CategorySpecial},
	{"Thunderbolt", model.TypeElectric, 95, model.CategorySpecial},
	{"Thunder", model.TypeElectric, 120, model.CategorySpecial},
	// Grass
	{"Vine Whip", model.TypeGrass, 35, model.CategorySpecial},
	{"Razor Leaf", model.TypeGrass, 55, model.CategorySpecial},
	{"Solar Beam", model.TypeGrass, 120, model.CategorySpecial},
	// Ice
	{"Ice Beam", model.TypeIce, 95, model.CategorySpecial},
	{"Blizzard", model.TypeIce, 120, model.CategorySpecial},
	// Fighting
	{"Karate Chop", model.TypeFighting, 50, model.CategoryPhysical},
	{"Submission", model.TypeFighting, 80, model.CategoryPhysical},
	{"Low Kick", model.TypeFighting, 50, model.CategoryPhysical},
	// Poison
	{"Poison Sting", model.TypePoison, 15, model.CategoryPhysical},
	{"Sludge", model.TypePoison, 65, model.CategoryPhysical},
	// Ground
	{"Dig", model.TypeGround, 100, model.CategoryPhysical},
	{"Earthquake", model.TypeGround, 100, model.CategoryPhysical},
	// Flying
	{"Wing Attack", model.TypeFlying, 35, model.CategoryPhysical},
	{"Drill Peck", model.TypeFlying, 80, model.CategoryPhysical},
	// Psychic
	{"Confusion", model.TypePsychic, 50, model.CategorySpecial},
	{"Psychic", model.TypePsychic, 90, model.CategorySpecial},
	// Bug
	{"Pin Missile", model.TypeBug, 14, model.CategoryPhysical},
	{"Leech Life", model.TypeBug, 20, model.CategoryPhysical},
	// Rock
	{"Rock Throw", model.TypeRock, 50, model.CategoryPhysical},
	{"Rock Slide", model.TypeRock, 75, model.CategoryPhysical},
	// Ghost
	{"Lick", model.TypeGhost, 20, model.CategoryPhysical},
	// Dragon
	{"Dragon Breath", model.TypeDragon, 60, model.CategorySpecial},
	// Status (power 0)
	{"Growl", model.TypeNormal, 0, model.CategoryStatus},
	{"Swords Dance", model.TypeNormal, 0, model.CategoryStatus},
	{"Thunder Wave", model.TypeElectric, 0, model.CategoryStatus},
	{"Sleep Powder", model.TypeGrass, 0, model.CategoryStatus},
	{"Toxic", model.TypePoison, 0, model.CategoryStatus},
	{"Amnesia", model.TypePsychic, 0, model.CategoryStatus},
}
