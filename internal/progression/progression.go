// Package progression resolves experience gains into levels and derives
// player stats from equipment.
package progression

// Track is the level/experience state shared by the player and items.
type Track struct {
	Level         int
	Experience    int
	MaxExperience int
}

// Result is the track after an experience gain plus the number of levels
// crossed by it.
type Result struct {
	Track
	LevelsGained int
}

// ApplyExperience adds amount to the track and resolves level-ups. A single
// large gain may cross several thresholds; each level-up subtracts the
// current threshold and grows it by growthFactor, truncated to an integer.
// Negative amounts are clamped to zero.
func ApplyExperience(t Track, amount int, growthFactor float64) Result {
	if amount < 0 {
		amount = 0
	}
	if t.MaxExperience <= 0 {
		// Malformed track; leave it untouched rather than loop forever.
		return Result{Track: t}
	}

	exp := t.Experience + amount
	level := t.Level
	max := t.MaxExperience
	gained := 0

	for exp >= max {
		exp -= max
		level++
		max = int(float64(max) * growthFactor)
		gained++
	}

	return Result{
		Track:        Track{Level: level, Experience: exp, MaxExperience: max},
		LevelsGained: gained,
	}
}

// ForceLevelUp unconditionally advances the track one level, resetting
// experience instead of carrying overflow.
func ForceLevelUp(t Track, growthFactor float64) Track {
	return Track{
		Level:         t.Level + 1,
		Experience:    0,
		MaxExperience: int(float64(t.MaxExperience) * growthFactor),
	}
}
