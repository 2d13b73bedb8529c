package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCombatant(t *testing.T) {
	stats := Stats{Level: 50, HP: 35, Attack: 55, Defense: 30, Special: 50, Speed: 90}

	tests := []struct {
		name    string
		types   [2]Type
		wantErr error
	}{
		{"single type", [2]Type{TypeElectric, TypeNone}, nil},
		{"dual type", [2]Type{TypeFire, TypeFlying}, nil},
		{"duplicate real type", [2]Type{TypeWater, TypeWater}, ErrDuplicateType},
		{"primary sentinel", [2]Type{TypeNone, TypeFire}, ErrPrimaryTypeNone},
		{"both sentinel", [2]Type{TypeNone, TypeNone}, ErrPrimaryTypeNone},
		{"out of range", [2]Type{TypeFire, Type(42)}, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCombatant("Test", tt.types, stats)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.types, c.Types)
			assert.Equal(t, stats, c.Stats)
			assert.Equal(t, StatStages{}, c.Stages)
			assert.Equal(t, Healthy(), c.Status)
		})
	}
}

func TestCombatant_HasType(t *testing.T) {
	c, err := NewCombatant("Charizard", [2]Type{TypeFire, TypeFlying}, Stats{Level: 100})
	require.NoError(t, err)

	assert.True(t, c.HasType(TypeFire))
	assert.True(t, c.HasType(TypeFlying))
	assert.False(t, c.HasType(TypeWater))
}

func TestCombatant_WithDoesNotMutate(t *testing.T) {
	orig, err := NewCombatant("Pikachu", [2]Type{TypeElectric, TypeNone}, Stats{Level: 50, Attack: 55})
	require.NoError(t, err)

	staged := orig.WithStages(StatStages{Attack: 2})
	burned := orig.WithStatus(Burned())
	leveled := orig.WithLevel(100)

	assert.Equal(t, int8(2), staged.Stages.Attack)
	assert.True(t, burned.Status.IsBurned())
	assert.Equal(t, uint8(100), leveled.Stats.Level)

	assert.Equal(t, StatStages{}, orig.Stages)
	assert.False(t, orig.Status.IsBurned())
	assert.Equal(t, uint8(50), orig.Stats.Level)
}

func TestCombatant_String(t *testing.T) {
	single := &Combatant{Name: "Pikachu", Types: [2]Type{TypeElectric, TypeNone}, Stats: Stats{Level: 5}}
	dual := &Combatant{Name: "Gengar", Types: [2]Type{TypeGhost, TypePoison}, Stats: Stats{Level: 60}}

	assert.Equal(t, "Pikachu [Electric] L5", single.String())
	assert.Equal(t, "Gengar [Ghost/Poison] L60", dual.String())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Healthy", Healthy().String())
	assert.Equal(t, "Asleep(3)", Asleep(3).String())
	assert.True(t, Burned().IsBurned())
	for _, s := range []Status{Healthy(), Poisoned(), Paralyzed(), Frozen(), Asleep(1)} {
		assert.False(t, s.IsBurned(), s.String())
	}
}
