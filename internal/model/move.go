package model

import (
	"errors"
	"fmt"
)

// Category определяет, какие статы использует приём.
type Category uint8

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "Physical"
	case CategorySpecial:
		return "Special"
	case CategoryStatus:
		return "Status"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

var (
	ErrStatusMovePower = errors.New("status move must have zero power")
	ErrZeroPower       = errors.New("damaging move must have non-zero power")
	ErrInvalidMoveType = errors.New("move type must be a real type")
)

// Move: неизменяемое описание приёма.
// Power 0 означает status move (прямого урона нет).
type Move struct {
	Name     string
	Type     Type
	Power    uint8
	Category Category
}

// NewMove creates a Move and checks the category/power contract.
func NewMove(name string, typ Type, power uint8, category Category) (*Move, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("move %q: %w", name, ErrInvalidMoveType)
	}
	switch category {
	case CategoryStatus:
		if power != 0 {
			return nil, fmt.Errorf("move %q (power=%d): %w", name, power, ErrStatusMovePower)
		}
	case CategoryPhysical, CategorySpecial:
		if power == 0 {
			return nil, fmt.Errorf("move %q (%s): %w", name, category, ErrZeroPower)
		}
	default:
		return nil, fmt.Errorf("move %q: unknown category %d", name, category)
	}
	return &Move{Name: name, Type: typ, Power: power, Category: category}, nil
}

// IsStatus reports whether the move deals no direct damage.
func (m *Move) IsStatus() bool {
	return m.Power == 0
}
