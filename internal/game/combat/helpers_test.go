package combat

import (
	"testing"

	"github.com/udisondev/gen1calc/internal/model"
)

// fixedRand всегда возвращает одно и то же значение и запоминает последний n.
type fixedRand struct {
	value int
	lastN int
}

func (r *fixedRand) IntN(n int) int {
	r.lastN = n
	if r.value >= n {
		return n - 1
	}
	return r.value
}

// newTestCombatant создаёт комбатанта с заданными типами и статами, без стадий и статусов.
func newTestCombatant(t testing.TB, name string, types [2]model.Type, stats model.Stats) *model.Combatant {
	t.Helper()
	c, err := model.NewCombatant(name, types, stats)
	if err != nil {
		t.Fatalf("NewCombatant(%s): %v", name, err)
	}
	return c
}

func newTestMove(t testing.TB, name string, typ model.Type, power uint8, category model.Category) *model.Move {
	t.Helper()
	m, err := model.NewMove(name, typ, power, category)
	if err != nil {
		t.Fatalf("NewMove(%s): %v", name, err)
	}
	return m
}

// catchViolation runs fn and returns the *ContractViolation it panicked with, or nil.
func catchViolation(fn func()) (cv *ContractViolation) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*ContractViolation)
			if !ok {
				panic(r)
			}
			cv = v
		}
	}()
	fn()
	return nil
}
