package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestApplyExperience_NoLevelUp(t *testing.T) {
	res := ApplyExperience(Track{Level: 1, Experience: 0, MaxExperience: 300}, 100, 1.5)

	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 100, res.Experience)
	assert.Equal(t, 300, res.MaxExperience)
	assert.Equal(t, 0, res.LevelsGained)
}

func TestApplyExperience_SingleLevelUp(t *testing.T) {
	res := ApplyExperience(Track{Level: 1, Experience: 250, MaxExperience: 300}, 100, 1.5)

	assert.Equal(t, 2, res.Level)
	assert.Equal(t, 50, res.Experience)
	assert.Equal(t, 450, res.MaxExperience)
	assert.Equal(t, 1, res.LevelsGained)
}

func TestApplyExperience_MultiLevelCascade(t *testing.T) {
	// 290+1000 = 1290: crosses 300 (→450) and 450 (→675), ends at 540/675.
	res := ApplyExperience(Track{Level: 1, Experience: 290, MaxExperience: 300}, 1000, 1.5)

	assert.Equal(t, 3, res.Level)
	assert.Equal(t, 540, res.Experience)
	assert.Equal(t, 675, res.MaxExperience)
	assert.Equal(t, 2, res.LevelsGained)
}

func TestApplyExperience_ItemGrowthFloors(t *testing.T) {
	// 250*1.2 = 300, 300*1.2 = 360: exact here, but 125*1.2 = 150 and
	// 151*1.2 = 181.2 must truncate.
	res := ApplyExperience(Track{Level: 1, Experience: 0, MaxExperience: 151}, 151, 1.2)

	assert.Equal(t, 2, res.Level)
	assert.Equal(t, 181, res.MaxExperience)
}

func TestApplyExperience_NegativeAmountClamped(t *testing.T) {
	start := Track{Level: 3, Experience: 42, MaxExperience: 675}
	res := ApplyExperience(start, -500, 1.5)

	assert.Equal(t, start, res.Track)
	assert.Equal(t, 0, res.LevelsGained)
}

func TestApplyExperience_ZeroMaxIsLeftAlone(t *testing.T) {
	start := Track{Level: 1, Experience: 0, MaxExperience: 0}
	res := ApplyExperience(start, 100, 1.5)

	assert.Equal(t, start, res.Track)
}

func TestApplyExperience_InvariantExperienceBelowMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.IntRange(1, 100_000).Draw(t, "max")
		start := Track{
			Level:         rapid.IntRange(1, 100).Draw(t, "level"),
			Experience:    rapid.IntRange(0, max-1).Draw(t, "exp"),
			MaxExperience: max,
		}
		amount := rapid.IntRange(0, 1_000_000).Draw(t, "amount")

		res := ApplyExperience(start, amount, 1.5)

		assert.Less(t, res.Experience, res.MaxExperience)
		assert.GreaterOrEqual(t, res.Experience, 0)
		assert.Equal(t, start.Level+res.LevelsGained, res.Level)
	})
}

func TestApplyExperience_BatchEqualsSequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.IntRange(1, 10_000).Draw(t, "max")
		start := Track{
			Level:         rapid.IntRange(1, 50).Draw(t, "level"),
			Experience:    rapid.IntRange(0, max-1).Draw(t, "exp"),
			MaxExperience: max,
		}
		amounts := rapid.SliceOfN(rapid.IntRange(0, 50_000), 1, 8).Draw(t, "amounts")

		total := 0
		for _, a := range amounts {
			total += a
		}
		batch := ApplyExperience(start, total, 1.5)

		cur := start
		levels := 0
		for _, a := range amounts {
			r := ApplyExperience(cur, a, 1.5)
			cur = r.Track
			levels += r.LevelsGained
		}

		assert.Equal(t, cur, batch.Track)
		assert.Equal(t, levels, batch.LevelsGained)
	})
}

func TestForceLevelUp(t *testing.T) {
	got := ForceLevelUp(Track{Level: 2, Experience: 117, MaxExperience: 450}, 1.5)

	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 0, got.Experience, "forced level-up discards overflow")
	assert.Equal(t, 675, got.MaxExperience)
}
