package data

import "github.com/udisondev/gen1calc/internal/model"

// speciesDef holds Gen 1 base stats (single Special stat).
type speciesDef struct {
	name    string
	types   [2]model.Type
	hp      uint8
	attack  uint8
	defense uint8
	special uint8
	speed   uint8
}

var speciesDefs = []speciesDef{
	{"Venusaur", [2]model.Type{model.TypeGrass, model.TypePoison}, 80, 82, 83, 100, 80},
	{"Charizard", [2]model.Type{model.TypeFire, model.TypeFlying}, 78, 84, 78, 85, 100},
	{"Blastoise", [2]model.Type{model.TypeWater, model.TypeNone}, 79, 83, 100, 85, 78},
	{"Butterfree", [2]model.Type{model.TypeBug, model.TypeFlying}, 60, 45, 50, 80, 70},
	{"Pikachu", [2]model.Type{model.TypeElectric, model.TypeNone}, 35, 55, 30, 50, 90},
	{"Alakazam", [2]model.Type{model.TypePsychic, model.TypeNone}, 55, 50, 45, 135, 120},
	{"Machamp", [2]model.Type{model.TypeFighting, model.TypeNone}, 90, 130, 80, 65, 55},
	{"Golem", [2]model.Type{model.TypeRock, model.TypeGround}, 80, 110, 130, 55, 45},
	{"Gengar", [2]model.Type{model.TypeGhost, model.TypePoison}, 60, 65, 60, 130, 110},
	{"Onix", [2]model.Type{model.TypeRock, model.TypeGround}, 35, 45, 160, 30, 70},
	{"Exeggutor", [2]model.Type{model.TypeGrass, model.TypePsychic}, 95, 95, 85, 125, 55},
	{"Starmie", [2]model.Type{model.TypeWater, model.TypePsychic}, 60, 75, 85, 100, 115},
	{"Jynx", [2]model.Type{model.TypeIce, model.TypePsychic}, 65, 50, 35, 95, 95},
	{"Tauros", [2]model.Type{model.TypeNormal, model.TypeNone}, 75, 100, 95, 70, 110},
	{"Gyarados", [2]model.Type{model.TypeWater, model.TypeFlying}, 95, 125, 79, 100, 81},
	{"Lapras", [2]model.Type{model.TypeWater, model.TypeIce}, 130, 85, 80, 95, 60},
	{"Snorlax", [2]model.Type{model.TypeNormal, model.TypeNone}, 160, 110, 65, 65, 30},
	{"Zapdos", [2]model.Type{model.TypeElectric, model.TypeFlying}, 90, 90, 85, 125, 100},
	{"Dragonite", [2]model.Type{model.TypeDragon, model.TypeFlying}, 91, 134, 95, 100, 80},
	{"Mewtwo", [2]model.Type{model.TypePsychic, model.TypeNone}, 106, 110, 90, 154, 130},
}
