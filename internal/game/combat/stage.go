package combat

// Stage limits for in-battle stat modifiers.
const (
	MinStage int8 = -6
	MaxStage int8 = 6
)

// ClampStage clamps a stage to [MinStage, MaxStage].
func ClampStage(stage int8) int8 {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}

// StageRatio returns the (numerator, denominator) pair of a stage.
// Stage s >= 0: (2+s)/2. Stage s < 0: 2/(2-s).
//
//	-6: 2/8  -5: 2/7  -4: 2/6  -3: 2/5  -2: 2/4  -1: 2/3
//	 0: 2/2
//	+1: 3/2  +2: 4/2  +3: 5/2  +4: 6/2  +5: 7/2  +6: 8/2
func StageRatio(stage int8) (num, den uint32) {
	stage = ClampStage(stage)
	if stage >= 0 {
		return 2 + uint32(stage), 2
	}
	return 2, 2 + uint32(-stage)
}

// StatStageModifier applies a stage to a base stat.
// Result = floor(base × num / den), never less than 1 (even for base 0).
// Out-of-range stages are clamped, never rejected.
func StatStageModifier(base uint8, stage int8) uint16 {
	num, den := StageRatio(stage)
	v := uint32(base) * num / den
	if v < 1 {
		v = 1
	}
	return uint16(v)
}
