// Package save persists versioned game snapshots. The store treats it as an
// external collaborator: load once at startup, save after every mutation.
package save

import (
	"errors"

	"github.com/QWERN-9876r/shrimp/internal/loot"
	"github.com/QWERN-9876r/shrimp/internal/player"
	"github.com/QWERN-9876r/shrimp/internal/task"
)

// Key is the namespaced identifier the game stores its snapshot under.
const Key = "life-rpg-storage"

// Version tags snapshots so future schema changes can be detected.
const Version = 1

// ErrVersionMismatch is returned by Load when the stored snapshot carries a
// different version than this build understands.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// State is the full serializable game state.
type State struct {
	Player                player.Player `json:"player"`
	Tasks                 []task.Task   `json:"tasks"`
	Potions               []loot.Potion `json:"potions"`
	ReceivedPotions       []loot.Potion `json:"receivedPotions"`
	CompletedTasksCount   int           `json:"completedTasksCount"`
	TotalExperienceGained int           `json:"totalExperienceGained"`
}

type Snapshot struct {
	Version int   `json:"version"`
	State   State `json:"state"`
}

// Store loads and saves snapshots by key. The bool from Load reports
// whether a snapshot existed.
type Store interface {
	Load(key string) (Snapshot, bool, error)
	Save(key string, snap Snapshot) error
}
