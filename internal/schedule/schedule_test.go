package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfehric/gamify/internal/catalog"
	"github.com/mfehric/gamify/internal/engine"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Quests: []catalog.Quest{
			{ID: "deep", Name: "Deep Work", Icon: "🧠", Color: "#111",
				Duration: 60,
				Subtasks: []catalog.Subtask{{ID: "d1", Name: "Session", XP: 40}}},
			{ID: "quick", Name: "Quick Task", Icon: "⚡", Color: "#222",
				Duration: 20,
				Subtasks: []catalog.Subtask{{ID: "q1", Name: "Do it", XP: 10}}},
			{ID: "default", Name: "Default Task", Icon: "📋", Color: "#333",
				Subtasks: []catalog.Subtask{{ID: "x1", Name: "Do it", XP: 10}}},
		},
		Levels:      []catalog.LevelTier{{Level: 1, Title: "Novice", XPRequired: 0}},
		Multipliers: []catalog.MultiplierStep{{MinStreak: 0, Multiplier: 1.0}},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestGenerateTimeline(t *testing.T) {
	cat := testCatalog()
	st := engine.NewState(cat, "Tester", at(9, 0))

	slots := Generate(cat, st, at(9, 10))
	require.Len(t, slots, 4) // deep, break, quick, default

	assert.Equal(t, KindTask, slots[0].Kind)
	assert.Equal(t, "Deep Work", slots[0].Name)
	assert.Equal(t, at(9, 30), slots[0].Start)
	assert.Equal(t, 60, slots[0].Minutes)

	// A 60-minute block earns a break.
	assert.Equal(t, KindBreak, slots[1].Kind)
	assert.Equal(t, at(10, 30), slots[1].Start)
	assert.Equal(t, 10, slots[1].Minutes)

	assert.Equal(t, "Quick Task", slots[2].Name)
	assert.Equal(t, at(10, 40), slots[2].Start)
	assert.Equal(t, 20, slots[2].Minutes)

	// Short blocks run back to back; missing duration falls back to 30.
	assert.Equal(t, "Default Task", slots[3].Name)
	assert.Equal(t, at(11, 0), slots[3].Start)
	assert.Equal(t, 30, slots[3].Minutes)
}

func TestGenerateSkipsCompletedQuests(t *testing.T) {
	cat := testCatalog()
	st := engine.NewState(cat, "Tester", at(9, 0))
	st.Tasks["deep"].Subtasks["d1"] = true

	slots := Generate(cat, st, at(9, 10))
	require.Len(t, slots, 2)
	assert.Equal(t, "Quick Task", slots[0].Name)
	assert.Equal(t, "Default Task", slots[1].Name)
}

func TestGenerateNoBreakAfterLastTask(t *testing.T) {
	cat := testCatalog()
	st := engine.NewState(cat, "Tester", at(9, 0))
	st.Tasks["quick"].Subtasks["q1"] = true
	st.Tasks["default"].Subtasks["x1"] = true

	slots := Generate(cat, st, at(9, 10))
	require.Len(t, slots, 1)
	assert.Equal(t, KindTask, slots[0].Kind)
}

func TestGenerateEmptyWhenAllDone(t *testing.T) {
	cat := testCatalog()
	st := engine.NewState(cat, "Tester", at(9, 0))
	for _, ts := range st.Tasks {
		for id := range ts.Subtasks {
			ts.Subtasks[id] = true
		}
	}

	assert.Empty(t, Generate(cat, st, at(9, 10)))
}

func TestRoundUpToHalfHour(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{at(9, 10), at(9, 30)},
		{at(9, 0), at(9, 30)},  // exact boundaries still advance
		{at(9, 30), at(10, 0)},
		{at(9, 45), at(10, 0)},
		{at(23, 45), time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundUpToHalfHour(tc.in), tc.in.Format("15:04"))
	}
}
