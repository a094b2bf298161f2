package engine

import (
	"math"

	"github.com/mfehric/gamify/internal/catalog"
)

// ToggleResult reports the effect of one subtask toggle.
type ToggleResult struct {
	QuestID   string
	SubtaskID string
	Completed bool // true: false→true transition, false: revert
	XPDelta   int  // positive on completion, negative on revert

	Multiplier  float64
	StreakBonus bool
	LevelUp     bool
	Tier        catalog.LevelTier

	NewlyUnlocked []catalog.AchievementRule
}

// ToggleSubtask flips a subtask's completion flag and applies the
// progression rules.
//
// Completion grants round(xp × streak multiplier); the multiplier uses
// the streak as it stood before today's increment, so the completion
// that starts a new day is paid at yesterday's rate. Reverting refunds
// only the base value; an on/off pair is not net-zero whenever the
// multiplier exceeds 1.
func (e *Engine) ToggleSubtask(st *State, questID, subtaskID string) (*ToggleResult, error) {
	q := e.Catalog.Quest(questID)
	if q == nil {
		return nil, NotFoundError{Kind: "quest", ID: questID}
	}
	sub := q.Subtask(subtaskID)
	if sub == nil {
		return nil, NotFoundError{Kind: "subtask", ID: subtaskID}
	}
	st.EnsureTaskStates(e.Catalog)
	ts := st.Tasks[questID]

	now := e.Clock.Now()
	today := Today(now)
	key := CompletionKey(questID, subtaskID)

	if done := ts.Subtasks[subtaskID]; done {
		// Revert: refund the base value only, floored at zero.
		ts.Subtasks[subtaskID] = false
		delete(st.CompletedToday, key)
		st.Player.XP = clampFloor(st.Player.XP - sub.XP)
		st.Player.TotalXP = clampFloor(st.Player.TotalXP - sub.XP)
		st.appendHistory(now, "revert", key, -sub.XP, 0)

		return &ToggleResult{
			QuestID:       questID,
			SubtaskID:     subtaskID,
			Completed:     false,
			XPDelta:       -sub.XP,
			Multiplier:    1.0,
			Tier:          e.Catalog.TierForXP(st.Player.TotalXP),
			NewlyUnlocked: e.EvaluateAchievements(st),
		}, nil
	}

	mult := e.Catalog.Multiplier(st.Player.Streak)
	earned := int(math.Round(float64(sub.XP) * mult))

	// First completion of the day extends (or restarts) the streak.
	if st.Player.LastActiveDate != today {
		if st.Player.LastActiveDate == Yesterday(today) {
			st.Player.Streak++
		} else {
			st.Player.Streak = 1
		}
		st.Player.LastActiveDate = today
	}

	ts.Subtasks[subtaskID] = true
	st.CompletedToday[key] = true
	st.Player.XP += earned
	st.Player.TotalXP += earned
	st.appendHistory(now, "complete", key, earned, 0)

	res := &ToggleResult{
		QuestID:     questID,
		SubtaskID:   subtaskID,
		Completed:   true,
		XPDelta:     earned,
		Multiplier:  mult,
		StreakBonus: mult > 1,
	}

	tier := e.Catalog.TierForXP(st.Player.TotalXP)
	if tier.Level > st.Player.Level {
		st.Player.Level = tier.Level
		res.LevelUp = true
		st.appendHistory(now, "levelup", tier.Title, 0, 0)
	}
	res.Tier = tier

	res.NewlyUnlocked = e.EvaluateAchievements(st)
	return res, nil
}

// LevelForXP returns the tier matching the cumulative XP total.
func (e *Engine) LevelForXP(totalXP int) catalog.LevelTier {
	return e.Catalog.TierForXP(totalXP)
}

// NextLevelXP returns the threshold the player is progressing toward.
func (e *Engine) NextLevelXP(level int) int {
	return e.Catalog.NextLevelXP(level)
}

// StreakMultiplier returns the XP multiplier for a streak length.
func (e *Engine) StreakMultiplier(streak int) float64 {
	return e.Catalog.Multiplier(streak)
}
