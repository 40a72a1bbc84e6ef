// Package task implements the task ledger: lifecycle and experience
// derivation for real-life tasks.
package task

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/QWERN-9876r/shrimp/internal/player"
)

// Category classifies a task; each category feeds experience into one
// equipment slot.
type Category string

const (
	CategoryEnglish    Category = "english"
	CategoryWork       Category = "work"
	CategoryUniversity Category = "university"
	CategoryHome       Category = "home"
	CategoryFitness    Category = "fitness"
	CategoryPersonal   Category = "personal"
)

func Categories() []Category {
	return []Category{
		CategoryEnglish,
		CategoryWork,
		CategoryUniversity,
		CategoryHome,
		CategoryFitness,
		CategoryPersonal,
	}
}

// SlotForCategory is the fixed, total category→equipment mapping.
var SlotForCategory = map[Category]player.Slot{
	CategoryEnglish:    player.SlotArmor,
	CategoryWork:       player.SlotRightHand,
	CategoryUniversity: player.SlotHelmet,
	CategoryHome:       player.SlotBoots,
	CategoryFitness:    player.SlotLeftHand,
	CategoryPersonal:   player.SlotArmor,
}

const (
	MaxDescriptionLen = 200

	minPoints = 1
	maxPoints = 10
)

var (
	ErrTitleRequired      = errors.New("task title is required")
	ErrDescriptionTooLong = fmt.Errorf("task description exceeds %d characters", MaxDescriptionLen)
	ErrUnknownCategory    = errors.New("unknown task category")
)

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`

	// Difficulty and Unwillingness are the raw 1-10 inputs shown to the
	// user. LootScore is the derived value the loot generator reads; both
	// are set once at creation and never recomputed.
	Difficulty    int     `json:"difficulty"`
	Unwillingness int     `json:"unwillingness"`
	LootScore     float64 `json:"lootScore"`

	// Experience is frozen at creation regardless of later tuning changes.
	Experience int `json:"experience"`

	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Input is the user-supplied portion of a new task.
type Input struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Difficulty    int      `json:"difficulty"`
	Unwillingness int      `json:"unwillingness"`
}

func clampPoints(v int) int {
	if v < minPoints {
		return minPoints
	}
	if v > maxPoints {
		return maxPoints
	}
	return v
}

// Validate checks the input and clamps the 1-10 point fields in place.
func (in *Input) Validate() error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if len([]rune(in.Description)) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if _, ok := SlotForCategory[in.Category]; !ok {
		return ErrUnknownCategory
	}
	in.Difficulty = clampPoints(in.Difficulty)
	in.Unwillingness = clampPoints(in.Unwillingness)
	return nil
}

// New builds a task from validated input, deriving its frozen experience
// value and the loot score used for reward rolls.
func New(in Input, now time.Time, experiencePerPoint int) (Task, error) {
	if err := in.Validate(); err != nil {
		return Task{}, err
	}

	d := float64(in.Difficulty)
	u := float64(in.Unwillingness)

	return Task{
		ID:            "task_" + uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Difficulty:    in.Difficulty,
		Unwillingness: in.Unwillingness,
		LootScore:     d*0.5*(u*0.7) + 20,
		Experience:    int(math.Floor(d * u * float64(experiencePerPoint))),
		Completed:     false,
		CreatedAt:     now,
	}, nil
}
