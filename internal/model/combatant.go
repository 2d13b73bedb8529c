package model

import (
	"errors"
	"fmt"
)

// Stats: базовые характеристики (Gen 1: единый Special).
// Level не ограничивается 1..100, это конвенция, а не инвариант.
type Stats struct {
	Level   uint8
	HP      uint8
	Attack  uint8
	Defense uint8
	Special uint8
	Speed   uint8
}

// StatStages holds in-battle stage modifiers.
// Logical range is [-6, +6]; out-of-range values are clamped by the consumer.
// Speed and Accuracy are not used by damage calculation.
type StatStages struct {
	Attack   int8
	Defense  int8
	Special  int8
	Speed    int8
	Accuracy int8
}

var (
	ErrPrimaryTypeNone = errors.New("primary type cannot be None")
	ErrDuplicateType   = errors.New("secondary type duplicates primary type")
	ErrInvalidType     = errors.New("invalid type")
)

// Combatant: участник боя. Передаётся в расчёт урона по указателю только для чтения.
type Combatant struct {
	Name   string
	Types  [2]Type
	Stats  Stats
	Stages StatStages
	Status Status
}

// NewCombatant creates a healthy combatant with zero stages.
// Types[1] may be TypeNone for single-typed combatants.
func NewCombatant(name string, types [2]Type, stats Stats) (*Combatant, error) {
	if err := validateTypes(types); err != nil {
		return nil, fmt.Errorf("combatant %q: %w", name, err)
	}
	return &Combatant{
		Name:  name,
		Types: types,
		Stats: stats,
	}, nil
}

func validateTypes(types [2]Type) error {
	if types[0] == TypeNone {
		return ErrPrimaryTypeNone
	}
	if !types[0].Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidType, types[0])
	}
	if types[1] != TypeNone && !types[1].Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidType, types[1])
	}
	if types[0] == types[1] {
		return ErrDuplicateType
	}
	return nil
}

// HasType reports whether either type slot equals t.
// The sentinel never matches because callers never pass it as a move type.
func (c *Combatant) HasType(t Type) bool {
	return c.Types[0] == t || c.Types[1] == t
}

// WithStages returns a copy with the given stages (immutable pattern).
func (c Combatant) WithStages(stages StatStages) *Combatant {
	c.Stages = stages
	return &c
}

// WithStatus returns a copy with the given status (immutable pattern).
func (c Combatant) WithStatus(status Status) *Combatant {
	c.Status = status
	return &c
}

// WithLevel returns a copy with the given level (immutable pattern).
func (c Combatant) WithLevel(level uint8) *Combatant {
	c.Stats.Level = level
	return &c
}

func (c *Combatant) String() string {
	if c.Types[1] == TypeNone {
		return fmt.Sprintf("%s [%s] L%d", c.Name, c.Types[0], c.Stats.Level)
	}
	return fmt.Sprintf("%s [%s/%s] L%d", c.Name, c.Types[0], c.Types[1], c.Stats.Level)
}
