package loot

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/QWERN-9876r/shrimp/internal/config"
)

// Source is the randomness seam. *math/rand.Rand satisfies it; tests inject
// deterministic sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Generator rolls potion rewards for completed tasks. All random draws go
// through the injected Source.
type Generator struct {
	src Source
	cfg config.Balance
	now func() time.Time
}

func NewGenerator(src Source, cfg config.Balance) *Generator {
	return &Generator{src: src, cfg: cfg, now: time.Now}
}

// Batch is the outcome of one completed task: a large decorative reel for
// the drop animation and the small awarded subset that reaches inventory.
type Batch struct {
	Reel    []Potion `json:"reel"`
	Awarded []Potion `json:"awarded"`
}

// RollRarity draws a rarity for the given loot score. Higher scores shift
// the roll upward but never past a tier for the same underlying draw.
func (g *Generator) RollRarity(lootScore float64) Rarity {
	roll := g.src.Float64()*100 + lootScore/g.cfg.LootScoreDivisor

	t := g.cfg.RarityThresholds
	switch {
	case roll >= t.Legendary:
		return Legendary
	case roll >= t.Epic:
		return Epic
	case roll >= t.Rare:
		return Rare
	default:
		return Common
	}
}

// DrawPotion picks uniformly from the content table for the rarity and
// stamps a fresh id and creation time.
func (g *Generator) DrawPotion(r Rarity) Potion {
	table := TableFor(r)
	e := table[g.src.Intn(len(table))]
	return Potion{
		ID:          "potion_" + uuid.NewString(),
		Name:        e.Name,
		Description: e.Description,
		Icon:        e.Icon,
		Rarity:      r,
		Used:        false,
		CreatedAt:   g.now(),
	}
}

// BuildDropBatch rolls the full reward outcome for a task's loot score.
// A zero reward count returns an empty batch; the caller must then skip the
// drop animation and apply completion immediately. Awarded[0] is the reel
// entry the animation lands on; any further awarded potions are bonus
// commons that never appear on the reel.
func (g *Generator) BuildDropBatch(lootScore float64) Batch {
	count := g.rewardCount(lootScore)
	if count == 0 {
		return Batch{Reel: []Potion{}, Awarded: []Potion{}}
	}

	size := int(math.Round(g.src.Float64()*float64(g.cfg.ReelSizeSpan))) + g.cfg.ReelBaseSize
	reel := make([]Potion, size)
	for i := range reel {
		reel[i] = g.DrawPotion(g.RollRarity(lootScore))
	}

	winner := int(math.Round(float64(len(reel)) * g.cfg.WinnerReelFraction))
	if winner >= len(reel) {
		winner = len(reel) - 1
	}

	awarded := make([]Potion, 0, count)
	awarded = append(awarded, reel[winner])
	for i := 1; i < count; i++ {
		awarded = append(awarded, g.DrawPotion(Common))
	}

	return Batch{Reel: reel, Awarded: awarded}
}

func (g *Generator) rewardCount(lootScore float64) int {
	// Scale factor lands in [0.5, 1.0).
	scale := g.src.Float64()/2 + 0.5
	n := int(math.Round(lootScore / g.cfg.RewardCountDivisor * scale))
	if n > g.cfg.MaxRewardCount {
		n = g.cfg.MaxRewardCount
	}
	if n < 0 {
		n = 0
	}
	return n
}
