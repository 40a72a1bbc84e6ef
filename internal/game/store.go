// Package game holds the single authoritative game state and sequences
// cross-component effects: task completion, deferred reward application,
// experience routing, and persistence.
package game

import (
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/QWERN-9876r/shrimp/internal/config"
	"github.com/QWERN-9876r/shrimp/internal/effect"
	"github.com/QWERN-9876r/shrimp/internal/loot"
	"github.com/QWERN-9876r/shrimp/internal/player"
	"github.com/QWERN-9876r/shrimp/internal/progression"
	"github.com/QWERN-9876r/shrimp/internal/save"
	"github.com/QWERN-9876r/shrimp/internal/task"
)

// Store owns all mutable game state. Every action is a single synchronous
// state transition; invalid ids are silent no-ops. The only deferred work
// is reward application after task completion, which waits out the drop
// animation and can be cancelled by removal or reset.
type Store struct {
	mu sync.Mutex

	cfg     config.Balance
	formula progression.Formula

	ledger          *task.Ledger
	player          player.Player
	potions         []loot.Potion
	received        []loot.Potion
	completedCount  int
	totalExperience int

	notifier effect.Notifier
	saver    save.Store
	sched    Scheduler
	clock    Clock
	log      *zap.Logger
}

// Options are the store's collaborators. Zero values get safe defaults:
// no-op notifier, in-memory persistence, timer scheduler, wall clock,
// no-op logger.
type Options struct {
	Notifier  effect.Notifier
	Saver     save.Store
	Scheduler Scheduler
	Clock     Clock
	Logger    *zap.Logger
}

func NewStore(cfg config.Balance, opts Options) *Store {
	if opts.Notifier == nil {
		opts.Notifier = effect.Nop{}
	}
	if opts.Saver == nil {
		opts.Saver = save.NewMemoryStore()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewTimerScheduler()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		cfg:      cfg,
		formula:  progression.NewFormula(cfg.StatWeights),
		ledger:   task.NewLedger(),
		notifier: opts.Notifier,
		saver:    opts.Saver,
		sched:    opts.Scheduler,
		clock:    opts.Clock,
		log:      opts.Logger,
	}

	snap, ok, err := s.saver.Load(save.Key)
	if err != nil {
		s.log.Warn("loading snapshot failed, starting fresh", zap.Error(err))
	}
	if ok {
		s.restoreLocked(snap.State)
	} else {
		s.freshStateLocked()
	}
	return s
}

func (s *Store) freshStateLocked() {
	s.player = player.New(s.cfg.PlayerBaseMaxExperience, s.cfg.ItemBaseMaxExperience)
	s.player.TotalStats = s.formula.Compute(s.player.Equipment)
	s.ledger.Replace(nil)
	s.potions = nil
	s.received = nil
	s.completedCount = 0
	s.totalExperience = 0
}

func (s *Store) restoreLocked(st save.State) {
	s.player = st.Player
	// Stats are derived state; never trust the stored copy.
	s.player.TotalStats = s.formula.Compute(s.player.Equipment)
	s.ledger.Replace(st.Tasks)
	s.potions = append([]loot.Potion(nil), st.Potions...)
	s.received = append([]loot.Potion(nil), st.ReceivedPotions...)
	s.completedCount = st.CompletedTasksCount
	s.totalExperience = st.TotalExperienceGained
}

func (s *Store) snapshotLocked() save.Snapshot {
	return save.Snapshot{
		Version: save.Version,
		State: save.State{
			Player:                s.player,
			Tasks:                 s.ledger.List(),
			Potions:               append([]loot.Potion(nil), s.potions...),
			ReceivedPotions:       append([]loot.Potion(nil), s.received...),
			CompletedTasksCount:   s.completedCount,
			TotalExperienceGained: s.totalExperience,
		},
	}
}

func (s *Store) saveLocked() {
	if err := s.saver.Save(save.Key, s.snapshotLocked()); err != nil {
		s.log.Warn("saving snapshot failed", zap.Error(err))
	}
}

// === Tasks ===

// AddTask validates the input and appends the new task to the active list.
func (s *Store) AddTask(in task.Input) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := task.New(in, s.clock.Now(), s.cfg.ExperiencePerPoint)
	if err != nil {
		return task.Task{}, err
	}
	s.ledger.Add(t)
	s.saveLocked()
	s.log.Info("task added", zap.String("task_id", t.ID), zap.String("category", string(t.Category)))
	return t, nil
}

// CompleteTask flags the task completed and stages the awarded potions for
// the drop animation. The rewards themselves (inventory, player and item
// experience) are committed only after RewardRevealDelay so the animation
// can run out. An empty awarded set means no animation plays and rewards
// apply immediately. The awarded set comes from the loot generator via the
// caller; the store itself stays free of randomness.
func (s *Store) CompleteTask(taskID string, awarded []loot.Potion) bool {
	s.mu.Lock()

	res, ok := s.ledger.Complete(taskID, s.clock.Now())
	if !ok {
		s.mu.Unlock()
		s.log.Debug("complete ignored", zap.String("task_id", taskID))
		return false
	}
	s.completedCount++

	if len(awarded) == 0 {
		notify := s.applyRewardsLocked(res, nil)
		s.saveLocked()
		s.mu.Unlock()
		notify()
		return true
	}

	s.received = append([]loot.Potion(nil), awarded...)
	s.saveLocked()
	s.mu.Unlock()

	s.log.Info("task completed, reward staged",
		zap.String("task_id", taskID),
		zap.Int("awarded", len(awarded)))

	s.sched.Schedule(taskID, s.cfg.RewardRevealDelay, func() {
		s.mu.Lock()
		s.received = nil
		notify := s.applyRewardsLocked(res, awarded)
		s.saveLocked()
		s.mu.Unlock()
		notify()
	})
	return true
}

// applyRewardsLocked commits potions to inventory and routes the task's
// experience to the player and the mapped equipment slot. It returns the
// effect notifications to fire once the lock is released.
func (s *Store) applyRewardsLocked(res task.CompletionResult, awarded []loot.Potion) func() {
	s.potions = append(s.potions, awarded...)

	playerLeveled := s.addPlayerExperienceLocked(res.Experience)
	itemLeveled := s.addItemExperienceLocked(res.Slot, res.Experience)

	amount := res.Experience
	playerLevel := s.player.Level
	item := s.player.Equipment.Item(res.Slot)
	itemLevel, itemName := item.Level, item.Name
	slot := res.Slot

	return func() {
		s.notifier.ExperienceGained(amount, effect.AnchorPlayerLevel)
		if playerLeveled {
			s.notifier.PlayerLeveledUp(playerLevel)
		}
		if itemLeveled {
			s.notifier.EquipmentLeveledUp(itemLevel, itemName, effect.SlotAnchor(slot))
		}
	}
}

// RemoveTask deletes the task and cancels any pending reward continuation
// for it.
func (s *Store) RemoveTask(taskID string) {
	s.sched.Cancel(taskID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Remove(taskID)
	s.saveLocked()
}

// === Experience ===

func (s *Store) addPlayerExperienceLocked(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	res := progression.ApplyExperience(progression.Track{
		Level:         s.player.Level,
		Experience:    s.player.Experience,
		MaxExperience: s.player.MaxExperience,
	}, amount, s.cfg.PlayerGrowthFactor)

	s.player.Level = res.Level
	s.player.Experience = res.Experience
	s.player.MaxExperience = res.MaxExperience
	s.totalExperience += amount
	return res.LevelsGained > 0
}

func (s *Store) addItemExperienceLocked(slot player.Slot, amount int) bool {
	item := s.player.Equipment.Item(slot)
	if item == nil {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	res := progression.ApplyExperience(progression.Track{
		Level:         item.Level,
		Experience:    item.Experience,
		MaxExperience: item.MaxExperience,
	}, amount, s.cfg.ItemGrowthFactor)

	item.Level = res.Level
	item.Experience = res.Experience
	item.MaxExperience = res.MaxExperience
	s.player.TotalStats = s.formula.Compute(s.player.Equipment)
	return res.LevelsGained > 0
}

// AddPlayerExperience applies experience to the player, resolving any
// level-up cascade. Reports whether at least one level was gained.
func (s *Store) AddPlayerExperience(amount int, showEffect bool, at effect.Anchor) bool {
	s.mu.Lock()
	leveled := s.addPlayerExperienceLocked(amount)
	newLevel := s.player.Level
	s.saveLocked()
	s.mu.Unlock()

	if showEffect {
		if at == "" {
			at = effect.AnchorPlayerLevel
		}
		s.notifier.ExperienceGained(amount, at)
		if leveled {
			s.notifier.PlayerLeveledUp(newLevel)
		}
	}
	return leveled
}

// AddItemExperience applies experience to one equipment slot and recomputes
// total stats. Reports whether the item leveled up.
func (s *Store) AddItemExperience(slot player.Slot, amount int, showEffect bool) bool {
	s.mu.Lock()
	leveled := s.addItemExperienceLocked(slot, amount)
	item := s.player.Equipment.Item(slot)
	if item == nil {
		s.mu.Unlock()
		s.log.Debug("item experience ignored", zap.String("slot", string(slot)))
		return false
	}
	newLevel, itemName := item.Level, item.Name
	s.saveLocked()
	s.mu.Unlock()

	if showEffect && leveled {
		s.notifier.EquipmentLeveledUp(newLevel, itemName, effect.SlotAnchor(slot))
	}
	return leveled
}

// LevelUpPlayer force-levels the player; debug/admin surface.
func (s *Store) LevelUpPlayer() {
	s.mu.Lock()
	t := progression.ForceLevelUp(progression.Track{
		Level:         s.player.Level,
		Experience:    s.player.Experience,
		MaxExperience: s.player.MaxExperience,
	}, s.cfg.PlayerGrowthFactor)
	s.player.Level = t.Level
	s.player.Experience = t.Experience
	s.player.MaxExperience = t.MaxExperience
	newLevel := s.player.Level
	s.saveLocked()
	s.mu.Unlock()

	s.notifier.PlayerLeveledUp(newLevel)
}

// LevelUpItem force-levels one equipment slot; debug/admin surface.
func (s *Store) LevelUpItem(slot player.Slot) {
	s.mu.Lock()
	item := s.player.Equipment.Item(slot)
	if item == nil {
		s.mu.Unlock()
		return
	}
	t := progression.ForceLevelUp(progression.Track{
		Level:         item.Level,
		Experience:    item.Experience,
		MaxExperience: item.MaxExperience,
	}, s.cfg.ItemGrowthFactor)
	item.Level = t.Level
	item.Experience = t.Experience
	item.MaxExperience = t.MaxExperience
	s.player.TotalStats = s.formula.Compute(s.player.Equipment)
	newLevel, itemName := item.Level, item.Name
	s.saveLocked()
	s.mu.Unlock()

	s.notifier.EquipmentLeveledUp(newLevel, itemName, effect.SlotAnchor(slot))
}

// AddTestExperience grants experience to the player and the same amount to
// a random equipment slot; debug surface.
func (s *Store) AddTestExperience(amount int) {
	s.AddPlayerExperience(amount, true, effect.AnchorPlayerLevel)
	slots := player.Slots()
	s.AddItemExperience(slots[rand.Intn(len(slots))], amount, true)
}

// === Potions ===

// AddPotion inserts a potion directly into the inventory.
func (s *Store) AddPotion(p loot.Potion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.potions = append(s.potions, p)
	s.saveLocked()
}

// UsePotion flips the potion's used flag. The transition is one-way; a
// missing or already-used potion is a no-op.
func (s *Store) UsePotion(potionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.potions {
		if s.potions[i].ID != potionID {
			continue
		}
		if s.potions[i].Used {
			return false
		}
		s.potions[i].Used = true
		s.saveLocked()
		return true
	}
	s.log.Debug("use potion ignored", zap.String("potion_id", potionID))
	return false
}

// === Utilities ===

// ResetGame restores a freshly-initialized state and cancels every pending
// reward continuation so stale completions cannot fire into the new game.
func (s *Store) ResetGame() {
	s.sched.CancelAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.freshStateLocked()
	s.saveLocked()
	s.log.Info("game reset")
}

// === Read surface ===

func (s *Store) Player() player.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player
}

func (s *Store) Tasks() []task.Task {
	return s.ledger.List()
}

func (s *Store) Potions() []loot.Potion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]loot.Potion(nil), s.potions...)
}

// ReceivedPotions is the transient staging set consumed by the drop
// animation between completion and reward application.
func (s *Store) ReceivedPotions() []loot.Potion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]loot.Potion(nil), s.received...)
}

func (s *Store) CompletedTasksCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedCount
}

func (s *Store) TotalExperienceGained() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalExperience
}
