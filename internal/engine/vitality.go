package engine

import "github.com/mfehric/gamify/internal/catalog"

// VitalityResult reports an HP change and a possible death transition.
type VitalityResult struct {
	HP    int
	Died  bool
	Level int // level after a death transition
}

// ApplyDamage adjusts HP by delta (negative = damage, positive = heal),
// clamped to [0, maxHp]. Hitting exactly zero triggers the death
// transition: one level lost (floor 1), HP restored to full, in-level
// XP reset. TotalXP is untouched; death never rewrites earned history.
func (e *Engine) ApplyDamage(st *State, delta int) *VitalityResult {
	hp := st.Player.HP + delta
	if hp < 0 {
		hp = 0
	}
	if hp > st.Player.MaxHP {
		hp = st.Player.MaxHP
	}
	st.Player.HP = hp

	res := &VitalityResult{HP: hp, Level: st.Player.Level}
	if hp == 0 {
		if st.Player.Level > 1 {
			st.Player.Level--
		}
		st.Player.HP = st.Player.MaxHP
		st.Player.XP = 0
		res.Died = true
		res.HP = st.Player.HP
		res.Level = st.Player.Level
		st.appendHistory(e.Clock.Now(), "death", "", 0, st.Player.MaxHP)
	}
	return res
}

// SlipResult reports the effect of a bad-habit report.
type SlipResult struct {
	Habit  catalog.BadHabit
	XPLost int
	HPLost int
	Died   bool
	Level  int

	NewlyUnlocked []catalog.AchievementRule
}

// ReportBadHabit applies a bad habit's fixed penalties: the XP penalty
// through the same floor-at-zero path as a revert (the level is not
// recomputed downward), the HP penalty through ApplyDamage.
func (e *Engine) ReportBadHabit(st *State, habitID string) (*SlipResult, error) {
	habit := e.Catalog.BadHabit(habitID)
	if habit == nil {
		return nil, NotFoundError{Kind: "bad habit", ID: habitID}
	}

	xpBefore := st.Player.TotalXP
	st.Player.XP = clampFloor(st.Player.XP + habit.XPPenalty)
	st.Player.TotalXP = clampFloor(st.Player.TotalXP + habit.XPPenalty)

	hpBefore := st.Player.HP
	vit := e.ApplyDamage(st, habit.HPPenalty)

	res := &SlipResult{
		Habit:  *habit,
		XPLost: xpBefore - st.Player.TotalXP,
		HPLost: hpBefore - vit.HP,
		Died:   vit.Died,
		Level:  vit.Level,
	}
	if vit.Died {
		// HP was restored to full; the loss shown is what the hit took.
		res.HPLost = hpBefore
	}

	st.appendHistory(e.Clock.Now(), "slip", habit.ID, habit.XPPenalty, habit.HPPenalty)
	res.NewlyUnlocked = e.EvaluateAchievements(st)
	return res, nil
}
