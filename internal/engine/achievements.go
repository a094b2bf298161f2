package engine

import "github.com/mfehric/gamify/internal/catalog"

// EvaluateAchievements checks every locked achievement's predicate
// against the current snapshot, in catalog order. Newly satisfied ones
// are appended to the unlocked set (append-only, never re-locked) and
// returned in the same order.
func (e *Engine) EvaluateAchievements(st *State) []catalog.AchievementRule {
	snap := catalog.Snapshot{
		Level:          st.Player.Level,
		XP:             st.Player.XP,
		TotalXP:        st.Player.TotalXP,
		Streak:         st.Player.Streak,
		HP:             st.Player.HP,
		Hour:           e.Clock.Now().Hour(),
		CompletedToday: len(st.CompletedToday),
		TotalSubtasks:  e.Catalog.TotalSubtasks(),
		QuestComplete:  st.QuestComplete,
	}

	var newly []catalog.AchievementRule
	for _, rule := range e.Catalog.Rules {
		if st.HasAchievement(rule.ID) {
			continue
		}
		if rule.Predicate(snap) {
			st.Achievements = append(st.Achievements, rule.ID)
			st.appendHistory(e.Clock.Now(), "achievement", rule.ID, 0, 0)
			newly = append(newly, rule)
		}
	}
	return newly
}
