package model

import (
	"fmt"
	"strings"
)

// Type: элементальный тип покемона или приёма (Generation 1).
// Порядок констант фиксирован: ordinal используется как индекс в typechart.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeNone // sentinel: no secondary type
)

// NumTypes is the number of real types (TypeNone excluded).
const NumTypes = int(TypeNone)

var typeNames = [...]string{
	TypeNormal:   "Normal",
	TypeFire:     "Fire",
	TypeWater:    "Water",
	TypeElectric: "Electric",
	TypeGrass:    "Grass",
	TypeIce:      "Ice",
	TypeFighting: "Fighting",
	TypePoison:   "Poison",
	TypeGround:   "Ground",
	TypeFlying:   "Flying",
	TypePsychic:  "Psychic",
	TypeBug:      "Bug",
	TypeRock:     "Rock",
	TypeGhost:    "Ghost",
	TypeDragon:   "Dragon",
	TypeNone:     "None",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is a real type (not the sentinel, not out of range).
func (t Type) Valid() bool {
	return t < TypeNone
}

// IsSpecial reports whether damaging moves of this type use the Special stat.
// Gen 1 split: category follows type, not the individual move.
func (t Type) IsSpecial() bool {
	switch t {
	case TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce, TypePsychic, TypeDragon:
		return true
	default:
		return false
	}
}

// ParseType resolves a type by name (case-insensitive). "" and "none" map to TypeNone.
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TypeNone, nil
	}
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return Type(i), nil
		}
	}
	return TypeNone, fmt.Errorf("unknown type %q", name)
}

// AllTypes returns the real types in ordinal order.
func AllTypes() []Type {
	types := make([]Type, NumTypes)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}
