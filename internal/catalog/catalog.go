package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Subtask is an atomic completable unit inside a quest.
type Subtask struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	XP   int    `yaml:"xp"`
}

// Quest is a habit composed of one or more subtasks. Catalog quests are
// immutable; custom quests are appended at runtime and persisted.
type Quest struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Icon          string    `yaml:"icon"`
	Category      string    `yaml:"category"`
	Description   string    `yaml:"description"`
	Identity      string    `yaml:"identity"`
	Subtasks      []Subtask `yaml:"subtasks"`
	TwoMinuteRule string    `yaml:"two_minute_rule,omitempty"`
	HabitStack    string    `yaml:"habit_stack,omitempty"`
	Color         string    `yaml:"color"`
	Duration      int       `yaml:"duration,omitempty"` // minutes, 0 = default 30
	IsCustom      bool      `yaml:"is_custom,omitempty"`
}

// Subtask returns the subtask with the given id, or nil.
func (q *Quest) Subtask(id string) *Subtask {
	for i := range q.Subtasks {
		if q.Subtasks[i].ID == id {
			return &q.Subtasks[i]
		}
	}
	return nil
}

// TotalXP is the sum of base subtask XP values.
func (q *Quest) TotalXP() int {
	total := 0
	for _, st := range q.Subtasks {
		total += st.XP
	}
	return total
}

// LevelTier is one row of the ascending level table.
type LevelTier struct {
	Level      int    `yaml:"level"`
	Title      string `yaml:"title"`
	XPRequired int    `yaml:"xp_required"`
	Icon       string `yaml:"icon"`
}

// MultiplierStep maps a minimum streak length to an XP multiplier.
type MultiplierStep struct {
	MinStreak  int     `yaml:"min_streak"`
	Multiplier float64 `yaml:"multiplier"`
}

// BadHabit is an anti-quest: reporting a slip applies fixed penalties.
// Both penalty fields are negative by convention.
type BadHabit struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	XPPenalty   int    `yaml:"xp_penalty"`
	HPPenalty   int    `yaml:"hp_penalty"`
}

// Catalog is the static rule configuration the engines read. It is
// treated as read-only except for Append, which registers custom quests
// created at runtime.
type Catalog struct {
	Quests      []Quest
	Levels      []LevelTier
	Multipliers []MultiplierStep
	Rules       []AchievementRule
	BadHabits   []BadHabit
	Quotes      []string

	// CriticalQuests must see at least one completion every day;
	// missing one costs MissedQuestPenalty HP at rollover.
	CriticalQuests     []string
	MissedQuestPenalty int
}

// Quest returns the quest with the given id, or nil.
func (c *Catalog) Quest(id string) *Quest {
	for i := range c.Quests {
		if c.Quests[i].ID == id {
			return &c.Quests[i]
		}
	}
	return nil
}

// BadHabit returns the bad habit with the given id, or nil.
func (c *Catalog) BadHabit(id string) *BadHabit {
	for i := range c.BadHabits {
		if c.BadHabits[i].ID == id {
			return &c.BadHabits[i]
		}
	}
	return nil
}

// Rule returns the achievement rule with the given id, or nil.
func (c *Catalog) Rule(id string) *AchievementRule {
	for i := range c.Rules {
		if c.Rules[i].ID == id {
			return &c.Rules[i]
		}
	}
	return nil
}

// TotalSubtasks counts subtasks across all quests.
func (c *Catalog) TotalSubtasks() int {
	n := 0
	for i := range c.Quests {
		n += len(c.Quests[i].Subtasks)
	}
	return n
}

// Append registers a quest created at runtime. The id must be unique.
func (c *Catalog) Append(q Quest) error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("quest id is required")
	}
	if c.Quest(q.ID) != nil {
		return fmt.Errorf("quest %q already exists", q.ID)
	}
	if len(q.Subtasks) == 0 {
		return fmt.Errorf("quest %q has no subtasks", q.ID)
	}
	c.Quests = append(c.Quests, q)
	return nil
}

// Multiplier returns the streak multiplier for the given streak length:
// the value of the largest step whose MinStreak <= streak.
func (c *Catalog) Multiplier(streak int) float64 {
	mult := 1.0
	for _, step := range c.Multipliers {
		if streak >= step.MinStreak {
			mult = step.Multiplier
		}
	}
	return mult
}

// TierForXP returns the highest tier whose threshold is <= totalXP.
// The first tier (xpRequired 0) is the floor.
func (c *Catalog) TierForXP(totalXP int) LevelTier {
	tier := c.Levels[0]
	for _, lt := range c.Levels {
		if totalXP >= lt.XPRequired {
			tier = lt
		}
	}
	return tier
}

// NextLevelXP returns the threshold of the tier above the given level,
// or the top tier's threshold when already at the cap.
func (c *Catalog) NextLevelXP(level int) int {
	for i, lt := range c.Levels {
		if lt.Level == level && i+1 < len(c.Levels) {
			return c.Levels[i+1].XPRequired
		}
	}
	return c.Levels[len(c.Levels)-1].XPRequired
}

// CurrentLevelXP returns the threshold of the given level, 0 if unknown.
func (c *Catalog) CurrentLevelXP(level int) int {
	for _, lt := range c.Levels {
		if lt.Level == level {
			return lt.XPRequired
		}
	}
	return 0
}

// Validate checks the catalog's structural invariants.
func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if c.Levels[0].XPRequired != 0 {
		return fmt.Errorf("first level tier must require 0 XP, got %d", c.Levels[0].XPRequired)
	}
	for i := 1; i < len(c.Levels); i++ {
		if c.Levels[i].XPRequired <= c.Levels[i-1].XPRequired {
			return fmt.Errorf("level table not ascending at tier %d", c.Levels[i].Level)
		}
	}

	if len(c.Multipliers) == 0 || c.Multipliers[0].MinStreak != 0 || c.Multipliers[0].Multiplier != 1.0 {
		return fmt.Errorf("multiplier table must start at {0, 1.0}")
	}
	for i := 1; i < len(c.Multipliers); i++ {
		if c.Multipliers[i].MinStreak <= c.Multipliers[i-1].MinStreak {
			return fmt.Errorf("multiplier thresholds not ascending at %d", c.Multipliers[i].MinStreak)
		}
		if c.Multipliers[i].Multiplier < c.Multipliers[i-1].Multiplier {
			return fmt.Errorf("multiplier table not monotonic at streak %d", c.Multipliers[i].MinStreak)
		}
	}

	seen := map[string]bool{}
	for i := range c.Quests {
		q := &c.Quests[i]
		if seen[q.ID] {
			return fmt.Errorf("duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true
		if len(q.Subtasks) == 0 {
			return fmt.Errorf("quest %q has no subtasks", q.ID)
		}
		stSeen := map[string]bool{}
		for _, st := range q.Subtasks {
			if stSeen[st.ID] {
				return fmt.Errorf("quest %q has duplicate subtask id %q", q.ID, st.ID)
			}
			stSeen[st.ID] = true
			if st.XP < 0 {
				return fmt.Errorf("subtask %s/%s has negative XP", q.ID, st.ID)
			}
		}
	}

	for _, id := range c.CriticalQuests {
		if c.Quest(id) == nil {
			return fmt.Errorf("critical quest %q not in catalog", id)
		}
	}

	for _, bh := range c.BadHabits {
		if bh.XPPenalty > 0 || bh.HPPenalty > 0 {
			return fmt.Errorf("bad habit %q has positive penalty", bh.ID)
		}
	}

	ruleSeen := map[string]bool{}
	for _, r := range c.Rules {
		if ruleSeen[r.ID] {
			return fmt.Errorf("duplicate achievement id %q", r.ID)
		}
		ruleSeen[r.ID] = true
		if r.Predicate == nil {
			return fmt.Errorf("achievement %q has no predicate", r.ID)
		}
	}

	return nil
}

// SortedQuestIDs returns quest ids in catalog order (custom last, as
// appended). Useful for deterministic rendering.
func (c *Catalog) SortedQuestIDs() []string {
	ids := make([]string, 0, len(c.Quests))
	for i := range c.Quests {
		ids = append(ids, c.Quests[i].ID)
	}
	return ids
}

// CustomQuests returns only runtime-created quests, ordered by id for
// stable persistence.
func (c *Catalog) CustomQuests() []Quest {
	var out []Quest
	for i := range c.Quests {
		if c.Quests[i].IsCustom {
			out = append(out, c.Quests[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
