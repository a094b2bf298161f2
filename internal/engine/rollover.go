package engine

// RolloverResult reports what a day reconciliation did.
type RolloverResult struct {
	Ran          bool
	MissedQuests []string // critical quests with no completion yesterday
	HPLost       int
	StreakBroken bool
}

// ReconcileDay runs the once-per-day reconciliation: missed-critical
// penalties, daily reset, streak continuity. Must complete before any
// toggle is processed for the session.
//
// Repeated calls with the same today are no-ops, guarded by
// LastResetDate. Penalties are summed and clamped to zero once; since
// clamping at a lower bound composes, this matches per-penalty
// clamping exactly.
func (e *Engine) ReconcileDay(st *State, today string) *RolloverResult {
	res := &RolloverResult{}

	ref := st.Player.LastResetDate
	if ref == "" {
		// Saves predating the reset marker: fall back to the last
		// active day.
		ref = st.Player.LastActiveDate
	}
	if ref == today {
		return res
	}
	if ref == "" {
		// First run ever: nothing to reconcile, just mark the day.
		st.Player.LastResetDate = today
		return res
	}

	res.Ran = true

	penalty := 0
	for _, questID := range e.Catalog.CriticalQuests {
		if e.Catalog.Quest(questID) == nil {
			continue
		}
		if !st.QuestRepresented(questID) {
			res.MissedQuests = append(res.MissedQuests, questID)
			penalty += e.Catalog.MissedQuestPenalty
		}
	}
	if penalty > 0 {
		before := st.Player.HP
		st.Player.HP = clampFloor(st.Player.HP - penalty)
		res.HPLost = before - st.Player.HP
	}

	st.CompletedToday = map[string]bool{}
	for _, ts := range st.Tasks {
		for id := range ts.Subtasks {
			ts.Subtasks[id] = false
		}
	}

	if st.Player.LastActiveDate != Yesterday(today) {
		if st.Player.Streak > 0 {
			res.StreakBroken = true
		}
		st.Player.Streak = 0
	}

	st.Player.LastResetDate = today
	st.appendHistory(e.Clock.Now(), "rollover", today, 0, -res.HPLost)
	return res
}
