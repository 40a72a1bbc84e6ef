// Package loot produces weighted-random potion rewards for completed tasks.
package loot

import "time"

// Rarity is the ordered quality tier of a potion.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Rarities returns all rarities in ascending order.
func Rarities() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary}
}

// Rank returns the ordinal of the rarity; unknown rarities rank below common.
func (r Rarity) Rank() int {
	switch r {
	case Common:
		return 0
	case Rare:
		return 1
	case Epic:
		return 2
	case Legendary:
		return 3
	default:
		return -1
	}
}

// Potion is a randomized reward item. Once awarded it is immutable except
// for the one-way Used flag.
type Potion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Rarity      Rarity    `json:"rarity"`
	Used        bool      `json:"used"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BestPotion returns the potion with the highest rarity rank. Ties go to the
// first-seen potion. The second return is false for an empty slice.
func BestPotion(potions []Potion) (Potion, bool) {
	if len(potions) == 0 {
		return Potion{}, false
	}
	best := potions[0]
	for _, p := range potions[1:] {
		if p.Rarity.Rank() > best.Rarity.Rank() {
			best = p
		}
	}
	return best, true
}
