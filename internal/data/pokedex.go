package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/gen1calc/internal/model"
)

var (
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownSpecies = errors.New("unknown species")
)

// MoveTable: registry of move templates, keyed by normalized name.
var MoveTable map[string]*model.Move

// SpeciesTable: registry of species templates, keyed by normalized name.
// Combatant values here are templates: level 0, never handed out directly.
var SpeciesTable map[string]*model.Combatant

func tableKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LoadMoveTemplates builds MoveTable from Go literals (moveDefs).
func LoadMoveTemplates() error {
	table := make(map[string]*model.Move, len(moveDefs))
	for _, def := range moveDefs {
		m, err := model.NewMove(def.name, def.typ, def.power, def.category)
		if err != nil {
			return fmt.Errorf("loading move templates: %w", err)
		}
		key := tableKey(def.name)
		if _, dup := table[key]; dup {
			return fmt.Errorf("loading move templates: duplicate move %q", def.name)
		}
		table[key] = m
	}
	MoveTable = table

	slog.Info("loaded move templates", "count", len(MoveTable))
	return nil
}

// LoadSpeciesTemplates builds SpeciesTable from Go literals (speciesDefs).
func LoadSpeciesTemplates() error {
	table := make(map[string]*model.Combatant, len(speciesDefs))
	for _, def := range speciesDefs {
		c, err := model.NewCombatant(def.name, def.types, model.Stats{
			HP:      def.hp,
			Attack:  def.attack,
			Defense: def.defense,
			Special: def.special,
			Speed:   def.speed,
		})
		if err != nil {
			return fmt.Errorf("loading species templates: %w", err)
		}
		table[tableKey(def.name)] = c
	}
	SpeciesTable = table

	slog.Info("loaded species templates", "count", len(SpeciesTable))
	return nil
}

// Load loads every template table.
func Load() error {
	if err := LoadMoveTemplates(); err != nil {
		return err
	}
	return LoadSpeciesTemplates()
}

// GetMove returns a copy of the named move template (case-insensitive).
func GetMove(name string) (*model.Move, error) {
	m, ok := MoveTable[tableKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	cp := *m
	return &cp, nil
}

// MustMove is GetMove for fixtures and tests; panics on unknown names.
func MustMove(name string) *model.Move {
	m, err := GetMove(name)
	if err != nil {
		panic(err)
	}
	return m
}

// NewCombatant creates a healthy combatant of the given species and level.
// Stats are the species base stats; stat growth is the caller's concern.
func NewCombatant(species string, level uint8) (*model.Combatant, error) {
	tmpl, ok := SpeciesTable[tableKey(species)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, species)
	}
	return tmpl.WithLevel(level), nil
}

// Moves returns all move templates of the given type, in table order.
func Moves(typ model.Type) []*model.Move {
	var out []*model.Move
	for _, def := range moveDefs {
		if def.typ != typ {
			continue
		}
		if m, ok := MoveTable[tableKey(def.name)]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}
