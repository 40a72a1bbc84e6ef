// Package effect is the decoupled signal path from store mutations to
// presentation-layer animations. The core only names an anchor; resolving
// anchors to screen geometry is the presentation layer's job.
package effect

import (
	"sync"

	"github.com/QWERN-9876r/shrimp/internal/player"
)

// Anchor names a presentation-layer attachment point for a visual effect.
type Anchor string

// AnchorPlayerLevel is the player level badge.
const AnchorPlayerLevel Anchor = "player-level"

// SlotAnchor returns the anchor for an equipment slot.
func SlotAnchor(s player.Slot) Anchor {
	return Anchor("equipment-" + string(s))
}

// Notifier receives fire-and-forget effect notifications from the store.
type Notifier interface {
	ExperienceGained(amount int, at Anchor)
	PlayerLeveledUp(newLevel int)
	EquipmentLeveledUp(newLevel int, itemName string, at Anchor)
}

// Bus fans notifications out to every subscribed notifier, in subscription
// order, synchronously.
type Bus struct {
	mu   sync.RWMutex
	subs []Notifier
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(n Notifier) {
	if n == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, n)
}

func (b *Bus) ExperienceGained(amount int, at Anchor) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, n := range b.subs {
		n.ExperienceGained(amount, at)
	}
}

func (b *Bus) PlayerLeveledUp(newLevel int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, n := range b.subs {
		n.PlayerLeveledUp(newLevel)
	}
}

func (b *Bus) EquipmentLeveledUp(newLevel int, itemName string, at Anchor) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, n := range b.subs {
		n.EquipmentLeveledUp(newLevel, itemName, at)
	}
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) ExperienceGained(int, Anchor)           {}
func (Nop) PlayerLeveledUp(int)                    {}
func (Nop) EquipmentLeveledUp(int, string, Anchor) {}
