package config

import "time"

// RarityThresholds are the ascending roll cutoffs for potion rarities.
// The highest threshold met wins; anything below Rare lands on common.
type RarityThresholds struct {
	Rare      float64 `yaml:"rare" json:"rare"`
	Epic      float64 `yaml:"epic" json:"epic"`
	Legendary float64 `yaml:"legendary" json:"legendary"`
}

// StatWeights is the linear model mapping equipment levels to player stats.
type StatWeights struct {
	RightHandStrength  int `yaml:"right_hand_strength" json:"right_hand_strength"`
	LeftHandStrength   int `yaml:"left_hand_strength" json:"left_hand_strength"`
	ArmorDefense       int `yaml:"armor_defense" json:"armor_defense"`
	HelmetIntelligence int `yaml:"helmet_intelligence" json:"helmet_intelligence"`
	BootsAgility       int `yaml:"boots_agility" json:"boots_agility"`
	LeftHandHealth     int `yaml:"left_hand_health" json:"left_hand_health"`
}

// Balance holds gameplay balance configuration
type Balance struct {
	// Level progression
	PlayerGrowthFactor      float64 `yaml:"player_growth_factor" json:"player_growth_factor"`
	ItemGrowthFactor        float64 `yaml:"item_growth_factor" json:"item_growth_factor"`
	PlayerBaseMaxExperience int     `yaml:"player_base_max_experience" json:"player_base_max_experience"`
	ItemBaseMaxExperience   int     `yaml:"item_base_max_experience" json:"item_base_max_experience"`

	// Task experience
	ExperiencePerPoint int `yaml:"experience_per_point" json:"experience_per_point"`

	// Loot rolls
	LootScoreDivisor   float64          `yaml:"loot_score_divisor" json:"loot_score_divisor"`
	RewardCountDivisor float64          `yaml:"reward_count_divisor" json:"reward_count_divisor"`
	MaxRewardCount     int              `yaml:"max_reward_count" json:"max_reward_count"`
	ReelBaseSize       int              `yaml:"reel_base_size" json:"reel_base_size"`
	ReelSizeSpan       int              `yaml:"reel_size_span" json:"reel_size_span"`
	WinnerReelFraction float64          `yaml:"winner_reel_fraction" json:"winner_reel_fraction"`
	RarityThresholds   RarityThresholds `yaml:"rarity_thresholds" json:"rarity_thresholds"`

	// Derived stats
	StatWeights StatWeights `yaml:"stat_weights" json:"stat_weights"`

	// How long the drop animation runs before rewards are committed.
	RewardRevealDelay time.Duration `yaml:"reward_reveal_delay" json:"reward_reveal_delay"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		PlayerGrowthFactor:      1.5,
		ItemGrowthFactor:        1.2,
		PlayerBaseMaxExperience: 300,
		ItemBaseMaxExperience:   250,
		ExperiencePerPoint:      10,
		LootScoreDivisor:        23,
		RewardCountDivisor:      30,
		MaxRewardCount:          3,
		ReelBaseSize:            75,
		ReelSizeSpan:            125,
		WinnerReelFraction:      2.0 / 3.0,
		RarityThresholds: RarityThresholds{
			Rare:      65,
			Epic:      92,
			Legendary: 102,
		},
		StatWeights: StatWeights{
			RightHandStrength:  10,
			LeftHandStrength:   5,
			ArmorDefense:       15,
			HelmetIntelligence: 12,
			BootsAgility:       8,
			LeftHandHealth:     20,
		},
		RewardRevealDelay: 1500 * time.Millisecond,
	}
}

// Casual returns easier balance for casual play
func Casual() Balance {
	cfg := Default()
	cfg.PlayerGrowthFactor = 1.4
	cfg.ItemGrowthFactor = 1.15
	cfg.RewardCountDivisor = 25
	cfg.RarityThresholds.Rare = 60
	cfg.RarityThresholds.Epic = 88
	cfg.RarityThresholds.Legendary = 100
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.PlayerGrowthFactor = 1.6
	cfg.ItemGrowthFactor = 1.25
	cfg.RewardCountDivisor = 35
	cfg.RarityThresholds.Rare = 70
	cfg.RarityThresholds.Epic = 95
	cfg.RarityThresholds.Legendary = 104
	return cfg
}
