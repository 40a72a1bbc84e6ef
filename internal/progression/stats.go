package progression

import (
	"github.com/QWERN-9876r/shrimp/internal/config"
	"github.com/QWERN-9876r/shrimp/internal/player"
)

// Formula is the linear stat model. The weights come from balance
// configuration so the model can be tuned without touching the engine.
type Formula struct {
	w config.StatWeights
}

func NewFormula(w config.StatWeights) Formula {
	return Formula{w: w}
}

// Compute derives total stats from equipment levels. Pure and deterministic.
func (f Formula) Compute(eq player.Equipment) player.Stats {
	return player.Stats{
		Strength:     eq.RightHand.Level*f.w.RightHandStrength + eq.LeftHand.Level*f.w.LeftHandStrength,
		Defense:      eq.Armor.Level * f.w.ArmorDefense,
		Intelligence: eq.Helmet.Level * f.w.HelmetIntelligence,
		Agility:      eq.Boots.Level * f.w.BootsAgility,
		Health:       eq.LeftHand.Level * f.w.LeftHandHealth,
	}
}
