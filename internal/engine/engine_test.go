package engine

import (
	"testing"
	"time"

	"github.com/mfehric/gamify/internal/catalog"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// noon avoids the early-bird and night-owl achievement windows.
var noon = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, at time.Time) (*Engine, *State) {
	t.Helper()
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	e := New(cat, fixedClock{at})
	return e, NewState(cat, "Tester", at)
}

func TestToggleSubtaskCompleteAndRevert(t *testing.T) {
	e, st := newTestEngine(t, noon)

	res, err := e.ToggleSubtask(st, "salah", "fajr")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Completed || res.XPDelta != 15 {
		t.Fatalf("expected +15 XP completion, got completed=%v delta=%d", res.Completed, res.XPDelta)
	}
	if res.Multiplier != 1.0 {
		t.Fatalf("fresh player should earn at x1.0, got %v", res.Multiplier)
	}
	if st.Player.Streak != 1 {
		t.Fatalf("first completion should start streak at 1, got %d", st.Player.Streak)
	}
	if st.Player.LastActiveDate != Today(noon) {
		t.Fatalf("last active date = %q, want %q", st.Player.LastActiveDate, Today(noon))
	}
	if !st.CompletedToday[CompletionKey("salah", "fajr")] {
		t.Fatalf("completion key missing from completedToday")
	}

	rev, err := e.ToggleSubtask(st, "salah", "fajr")
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if rev.Completed || rev.XPDelta != -15 {
		t.Fatalf("expected -15 XP revert, got completed=%v delta=%d", rev.Completed, rev.XPDelta)
	}
	if st.Player.TotalXP != 0 || st.Player.XP != 0 {
		t.Fatalf("XP should be back at zero, got total=%d xp=%d", st.Player.TotalXP, st.Player.XP)
	}
	if st.CompletedToday[CompletionKey("salah", "fajr")] {
		t.Fatalf("completion key should be removed on revert")
	}
	// Unlocked achievements survive the revert.
	if !st.HasAchievement("first-blood") {
		t.Fatalf("first-blood should stay unlocked after revert")
	}
}

func TestToggleRevertRefundsBaseOnly(t *testing.T) {
	e, st := newTestEngine(t, noon)
	st.Player.Streak = 7
	st.Player.LastActiveDate = Yesterday(Today(noon))

	res, err := e.ToggleSubtask(st, "salah", "dhuhr")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// Streak 7 pays x1.5; the increment to 8 happens after the rate is
	// read.
	if res.XPDelta != 15 {
		t.Fatalf("10 XP at x1.5 should earn 15, got %d", res.XPDelta)
	}
	if !res.StreakBonus {
		t.Fatalf("expected streak bonus flag")
	}
	if st.Player.Streak != 8 {
		t.Fatalf("streak should extend to 8, got %d", st.Player.Streak)
	}

	rev, err := e.ToggleSubtask(st, "salah", "dhuhr")
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if rev.XPDelta != -10 {
		t.Fatalf("revert refunds the base value only, got %d", rev.XPDelta)
	}
	if st.Player.TotalXP != 5 {
		t.Fatalf("on/off pair at x1.5 should net +5, got %d", st.Player.TotalXP)
	}
}

func TestToggleStreakRestartsAfterGap(t *testing.T) {
	e, st := newTestEngine(t, noon)
	st.Player.Streak = 12
	st.Player.LastActiveDate = "2026-08-28" // not yesterday

	if _, err := e.ToggleSubtask(st, "ml", "ml-study"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if st.Player.Streak != 1 {
		t.Fatalf("gap should restart streak at 1, got %d", st.Player.Streak)
	}
}

func TestToggleSameDayDoesNotExtendStreak(t *testing.T) {
	e, st := newTestEngine(t, noon)

	if _, err := e.ToggleSubtask(st, "salah", "fajr"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := e.ToggleSubtask(st, "salah", "dhuhr"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if st.Player.Streak != 1 {
		t.Fatalf("second completion on the same day must not extend the streak, got %d", st.Player.Streak)
	}
}

func TestToggleLevelUp(t *testing.T) {
	e, st := newTestEngine(t, noon)
	st.Player.XP = 90
	st.Player.TotalXP = 90

	res, err := e.ToggleSubtask(st, "tradermath", "tm-problems")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.LevelUp {
		t.Fatalf("crossing 100 total XP should level up")
	}
	if res.Tier.Level != 2 || res.Tier.Title != "Apprentice" {
		t.Fatalf("expected Apprentice tier, got %+v", res.Tier)
	}
	if st.Player.Level != 2 {
		t.Fatalf("player level = %d, want 2", st.Player.Level)
	}
}

func TestToggleUnknownIDs(t *testing.T) {
	e, st := newTestEngine(t, noon)

	if _, err := e.ToggleSubtask(st, "nope", "fajr"); !IsNotFound(err) {
		t.Fatalf("unknown quest should be a not-found error, got %v", err)
	}
	if _, err := e.ToggleSubtask(st, "salah", "nope"); !IsNotFound(err) {
		t.Fatalf("unknown subtask should be a not-found error, got %v", err)
	}
}

func TestStreakMultiplierTable(t *testing.T) {
	e, _ := newTestEngine(t, noon)

	cases := []struct {
		streak int
		want   float64
	}{
		{0, 1.0}, {1, 1.0}, {2, 1.0},
		{3, 1.25}, {6, 1.25},
		{7, 1.5}, {13, 1.5},
		{14, 1.75}, {30, 2.0}, {60, 2.5}, {90, 3.0}, {365, 3.0},
	}
	prev := 0.0
	for _, tc := range cases {
		got := e.StreakMultiplier(tc.streak)
		if got != tc.want {
			t.Fatalf("multiplier(%d) = %v, want %v", tc.streak, got, tc.want)
		}
		if got < prev {
			t.Fatalf("multiplier must be monotonic, dropped at streak %d", tc.streak)
		}
		prev = got
	}
}

func TestLevelForXPBoundaries(t *testing.T) {
	e, _ := newTestEngine(t, noon)

	cases := []struct {
		xp    int
		level int
	}{
		{0, 1}, {99, 1}, {100, 2}, {249, 2}, {250, 3},
		{800, 5}, {4999, 9}, {5000, 10}, {99999, 10},
	}
	for _, tc := range cases {
		if got := e.LevelForXP(tc.xp).Level; got != tc.level {
			t.Fatalf("levelForXP(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestYesterday(t *testing.T) {
	if got := Yesterday("2026-09-01"); got != "2026-08-31" {
		t.Fatalf("yesterday(2026-09-01) = %q", got)
	}
	if got := Yesterday("2026-01-01"); got != "2025-12-31" {
		t.Fatalf("yesterday(2026-01-01) = %q", got)
	}
	if got := Yesterday("garbage"); got != "" {
		t.Fatalf("invalid input should yield empty, got %q", got)
	}
}

func TestEnsureTaskStatesHealsMissingEntries(t *testing.T) {
	e, st := newTestEngine(t, noon)

	delete(st.Tasks, "ml")
	delete(st.Tasks["salah"].Subtasks, "isha")
	st.EnsureTaskStates(e.Catalog)

	if _, ok := st.Tasks["ml"]; !ok {
		t.Fatalf("missing quest state should be backfilled")
	}
	if _, ok := st.Tasks["salah"].Subtasks["isha"]; !ok {
		t.Fatalf("missing subtask flag should be backfilled")
	}
}
