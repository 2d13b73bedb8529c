package model

import "testing"

func TestParseType(t *testing.T) {
	for _, typ := range AllTypes() {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}

	if got, err := ParseType("  psychic "); err != nil || got != TypePsychic {
		t.Errorf("ParseType(psychic) = %v, %v", got, err)
	}
	if got, err := ParseType(""); err != nil || got != TypeNone {
		t.Errorf("ParseType(\"\") = %v, %v; want None", got, err)
	}
	if _, err := ParseType("Steel"); err == nil {
		t.Error("ParseType(Steel): expected error, Steel does not exist in Gen 1")
	}
}

func TestAllTypes(t *testing.T) {
	types := AllTypes()
	if len(types) != 15 {
		t.Fatalf("len(AllTypes()) = %d, want 15", len(types))
	}
	for _, typ := range types {
		if !typ.Valid() {
			t.Errorf("%v is not valid", typ)
		}
	}
	if TypeNone.Valid() {
		t.Error("TypeNone must not be valid")
	}
}

func TestType_IsSpecial(t *testing.T) {
	special := map[Type]bool{
		TypeFire: true, TypeWater: true, TypeGrass: true, TypeElectric: true,
		TypeIce: true, TypePsychic: true, TypeDragon: true,
	}
	for _, typ := range AllTypes() {
		if got := typ.IsSpecial(); got != special[typ] {
			t.Errorf("%v.IsSpecial() = %v, want %v", typ, got, special[typ])
		}
	}
}
