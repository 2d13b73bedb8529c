package combat

import "testing"

func TestStatStageModifier(t *testing.T) {
	tests := []struct {
		stage int8
		want  uint16
	}{
		{-6, 25},
		{-5, 28},
		{-4, 33},
		{-3, 40},
		{-2, 50},
		{-1, 66},
		{0, 100},
		{1, 150},
		{2, 200},
		{3, 250},
		{4, 300},
		{5, 350},
		{6, 400},
		{-7, 25},   // clamped to -6
		{-128, 25}, // clamped to -6
		{9, 400},   // clamped to +6
		{127, 400}, // clamped to +6
	}

	for _, tt := range tests {
		if got := StatStageModifier(100, tt.stage); got != tt.want {
			t.Errorf("StatStageModifier(100, %d) = %d, want %d", tt.stage, got, tt.want)
		}
	}
}

func TestStatStageModifier_Floor(t *testing.T) {
	for s := MinStage; s <= MaxStage; s++ {
		if got := StatStageModifier(0, s); got != 1 {
			t.Errorf("StatStageModifier(0, %d) = %d, want 1", s, got)
		}
	}
	// 1 × 2/8 truncates to 0 and is lifted to 1.
	if got := StatStageModifier(1, -6); got != 1 {
		t.Errorf("StatStageModifier(1, -6) = %d, want 1", got)
	}
}

func TestStatStageModifier_Monotonic(t *testing.T) {
	for base := 0; base <= 255; base++ {
		prev := uint16(0)
		for s := MinStage; s <= MaxStage; s++ {
			got := StatStageModifier(uint8(base), s)
			if got < prev {
				t.Fatalf("base %d: stage %d gives %d < previous %d", base, s, got, prev)
			}
			prev = got
		}
	}
}

func TestStatStageModifier_MaxValue(t *testing.T) {
	if got := StatStageModifier(255, 6); got != 1020 {
		t.Errorf("StatStageModifier(255, 6) = %d, want 1020", got)
	}
}

func TestStageRatio(t *testing.T) {
	for s := MinStage; s <= MaxStage; s++ {
		num, den := StageRatio(s)
		switch {
		case s == 0:
			if num != 2 || den != 2 {
				t.Errorf("stage 0: %d/%d, want 2/2", num, den)
			}
		case s > 0:
			if num != uint32(2+s) || den != 2 {
				t.Errorf("stage %d: %d/%d, want %d/2", s, num, den, 2+s)
			}
		default:
			if num != 2 || den != uint32(2-s) {
				t.Errorf("stage %d: %d/%d, want 2/%d", s, num, den, 2-s)
			}
		}
	}
}

func TestClampStage(t *testing.T) {
	tests := []struct{ in, want int8 }{
		{-128, -6}, {-7, -6}, {-6, -6}, {0, 0}, {6, 6}, {7, 6}, {127, 6},
	}
	for _, tt := range tests {
		if got := ClampStage(tt.in); got != tt.want {
			t.Errorf("ClampStage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
