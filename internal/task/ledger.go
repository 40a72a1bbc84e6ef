package task

import (
	"sync"
	"time"

	"github.com/QWERN-9876r/shrimp/internal/player"
)

// CompletionResult carries what the store needs to route rewards: the task's
// frozen experience and the equipment slot its category maps to.
type CompletionResult struct {
	Experience int
	Category   Category
	Slot       player.Slot
}

// Ledger is the ordered in-memory task collection. All ids originate from
// the ledger itself, so lookups that miss are treated as no-ops rather than
// errors.
type Ledger struct {
	mu    sync.RWMutex
	tasks []Task
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Add(t Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, t)
}

func (l *Ledger) Get(id string) (Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// List returns a copy of all tasks in insertion order.
func (l *Ledger) List() []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Complete marks the task completed and stamps CompletedAt. Returns false
// for an unknown id or a task that is already completed, so rewards apply
// exactly once.
func (l *Ledger) Complete(id string, now time.Time) (CompletionResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.tasks {
		if l.tasks[i].ID != id {
			continue
		}
		if l.tasks[i].Completed {
			return CompletionResult{}, false
		}
		l.tasks[i].Completed = true
		at := now
		l.tasks[i].CompletedAt = &at
		return CompletionResult{
			Experience: l.tasks[i].Experience,
			Category:   l.tasks[i].Category,
			Slot:       SlotForCategory[l.tasks[i].Category],
		}, true
	}
	return CompletionResult{}, false
}

// Remove deletes the task if present. Removing a missing id is already
// satisfied, not an error.
func (l *Ledger) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.tasks[:0]
	for _, t := range l.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	l.tasks = out
}

// Replace swaps the entire collection; used when restoring a snapshot.
func (l *Ledger) Replace(tasks []Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = make([]Task, len(tasks))
	copy(l.tasks, tasks)
}
