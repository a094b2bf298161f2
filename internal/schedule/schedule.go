// Package schedule packs incomplete quests into a simple timeline of
// task blocks with breaks inserted after long sessions.
package schedule

import (
	"time"

	"github.com/mfehric/gamify/internal/catalog"
	"github.com/mfehric/gamify/internal/engine"
)

const (
	// DefaultTaskMinutes is used for quests without a configured duration.
	DefaultTaskMinutes = 30
	// BreakMinutes is the fixed break length after long task blocks.
	BreakMinutes = 10
	// BreakThresholdMinutes: task blocks at least this long earn a break.
	BreakThresholdMinutes = 45
)

// Kind distinguishes timeline entries.
type Kind string

const (
	KindTask  Kind = "task"
	KindBreak Kind = "break"
)

// Slot is one timeline entry.
type Slot struct {
	Kind    Kind
	Start   time.Time
	Name    string
	Icon    string
	Color   string
	Minutes int
}

// Generate builds a schedule for every quest that still has at least
// one incomplete subtask, walking them in catalog order. The start
// time is rounded up to the next half-hour boundary. A ten-minute
// break follows any task of 45 minutes or more, unless it is the last
// one. An empty slice means nothing is left to plan, not an error.
func Generate(cat *catalog.Catalog, st *engine.State, startTime time.Time) []Slot {
	var eligible []*catalog.Quest
	for i := range cat.Quests {
		q := &cat.Quests[i]
		if !questDone(st, q) {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	cursor := roundUpToHalfHour(startTime)

	var slots []Slot
	for i, q := range eligible {
		minutes := q.Duration
		if minutes <= 0 {
			minutes = DefaultTaskMinutes
		}
		slots = append(slots, Slot{
			Kind:    KindTask,
			Start:   cursor,
			Name:    q.Name,
			Icon:    q.Icon,
			Color:   q.Color,
			Minutes: minutes,
		})
		cursor = cursor.Add(time.Duration(minutes) * time.Minute)

		if minutes >= BreakThresholdMinutes && i < len(eligible)-1 {
			slots = append(slots, Slot{
				Kind:    KindBreak,
				Start:   cursor,
				Name:    "Odmor za mozak",
				Icon:    "☕",
				Color:   "#10b981",
				Minutes: BreakMinutes,
			})
			cursor = cursor.Add(BreakMinutes * time.Minute)
		}
	}
	return slots
}

func questDone(st *engine.State, q *catalog.Quest) bool {
	ts, ok := st.Tasks[q.ID]
	if !ok {
		return false
	}
	for _, sub := range q.Subtasks {
		if !ts.Subtasks[sub.ID] {
			return false
		}
	}
	return true
}

// roundUpToHalfHour advances to the strictly-next :00 or :30 mark, so
// 09:10 becomes 09:30 and 09:00 becomes 09:30.
func roundUpToHalfHour(t time.Time) time.Time {
	t = t.Truncate(time.Minute)
	m := t.Minute()
	var add int
	if m >= 30 {
		add = 60 - m
	} else {
		add = 30 - m
	}
	return t.Add(time.Duration(add) * time.Minute)
}
