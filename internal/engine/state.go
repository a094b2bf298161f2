package engine

import (
	"strings"
	"time"

	"github.com/mfehric/gamify/internal/catalog"
)

// DateLayout is the calendar-day format used for streak and rollover
// bookkeeping (device-local dates).
const DateLayout = "2006-01-02"

// Player is the singleton progression record.
type Player struct {
	Name    string
	Level   int
	XP      int // XP accumulated within the current level; reset on death
	HP      int
	MaxHP   int
	TotalXP int
	Streak  int
	// LastActiveDate is the last day with at least one completion.
	// It drives streak continuity (see Engine.ToggleSubtask).
	LastActiveDate string
	// LastResetDate is the day the last rollover ran. It makes
	// ReconcileDay idempotent within a calendar day while leaving
	// LastActiveDate free to express "no completion yet today".
	LastResetDate string
	CreatedAt     time.Time
}

// TaskState tracks per-quest daily completion: one boolean per subtask.
type TaskState struct {
	QuestID  string
	Subtasks map[string]bool
}

// HistoryEntry is one append-only log record.
type HistoryEntry struct {
	At     time.Time
	Kind   string // complete, revert, slip, death, levelup, rollover, achievement
	Detail string
	XP     int
	HP     int
}

// Settings are persisted toggles with no engine effect.
type Settings struct {
	SoundEnabled         bool
	NotificationsEnabled bool
}

// State is the aggregate root owned by the engine. Collaborators read
// snapshots after each operation but never mutate it directly.
type State struct {
	Player         Player
	Tasks          map[string]*TaskState
	CompletedToday map[string]bool // key: "questId-subtaskId"
	Achievements   []string        // unlock order, append-only
	History        []HistoryEntry
	Settings       Settings
}

// NewState builds the default state for a first run.
func NewState(cat *catalog.Catalog, name string, now time.Time) *State {
	st := &State{
		Player: Player{
			Name:      name,
			Level:     1,
			XP:        0,
			HP:        100,
			MaxHP:     100,
			TotalXP:   0,
			Streak:    0,
			CreatedAt: now,
		},
		Tasks:          map[string]*TaskState{},
		CompletedToday: map[string]bool{},
		Settings: Settings{
			SoundEnabled:         true,
			NotificationsEnabled: true,
		},
	}
	st.EnsureTaskStates(cat)
	return st
}

// EnsureTaskStates backfills a TaskState for every catalog quest and a
// boolean for every subtask. Older saves missing quests or subtasks are
// healed rather than rejected.
func (st *State) EnsureTaskStates(cat *catalog.Catalog) {
	if st.Tasks == nil {
		st.Tasks = map[string]*TaskState{}
	}
	if st.CompletedToday == nil {
		st.CompletedToday = map[string]bool{}
	}
	for i := range cat.Quests {
		q := &cat.Quests[i]
		ts, ok := st.Tasks[q.ID]
		if !ok {
			ts = &TaskState{QuestID: q.ID, Subtasks: map[string]bool{}}
			st.Tasks[q.ID] = ts
		}
		if ts.Subtasks == nil {
			ts.Subtasks = map[string]bool{}
		}
		for _, sub := range q.Subtasks {
			if _, ok := ts.Subtasks[sub.ID]; !ok {
				ts.Subtasks[sub.ID] = false
			}
		}
	}
}

// CompletionKey is the composite completedToday key.
func CompletionKey(questID, subtaskID string) string {
	return questID + "-" + subtaskID
}

// QuestRepresented reports whether any completedToday entry belongs to
// the given quest.
func (st *State) QuestRepresented(questID string) bool {
	prefix := questID + "-"
	for key := range st.CompletedToday {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// QuestComplete reports whether every subtask of the quest is marked
// complete. Unknown quests are never complete.
func (st *State) QuestComplete(questID string) bool {
	ts, ok := st.Tasks[questID]
	if !ok || len(ts.Subtasks) == 0 {
		return false
	}
	for _, done := range ts.Subtasks {
		if !done {
			return false
		}
	}
	return true
}

// HasAchievement reports whether the achievement is already unlocked.
func (st *State) HasAchievement(id string) bool {
	for _, a := range st.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (st *State) appendHistory(now time.Time, kind, detail string, xp, hp int) {
	st.History = append(st.History, HistoryEntry{
		At:     now,
		Kind:   kind,
		Detail: detail,
		XP:     xp,
		HP:     hp,
	})
}
