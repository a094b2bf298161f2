package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Quests, 6)
	assert.Len(t, c.Levels, 10)
	assert.Len(t, c.Rules, 12)
	assert.NotEmpty(t, c.Quotes)
	assert.Equal(t, []string{"salah", "tradermath"}, c.CriticalQuests)
	assert.Equal(t, 10, c.MissedQuestPenalty)
}

func TestQuestLookup(t *testing.T) {
	c := Default()

	q := c.Quest("salah")
	require.NotNil(t, q)
	assert.Equal(t, 60, q.TotalXP())
	assert.NotNil(t, q.Subtask("fajr"))
	assert.Nil(t, q.Subtask("missing"))

	assert.Nil(t, c.Quest("missing"))
}

func TestMultiplierSteps(t *testing.T) {
	c := Default()

	assert.Equal(t, 1.0, c.Multiplier(0))
	assert.Equal(t, 1.0, c.Multiplier(2))
	assert.Equal(t, 1.25, c.Multiplier(3))
	assert.Equal(t, 1.5, c.Multiplier(10))
	assert.Equal(t, 3.0, c.Multiplier(200))
}

func TestTierForXP(t *testing.T) {
	c := Default()

	assert.Equal(t, "Novice", c.TierForXP(0).Title)
	assert.Equal(t, "Novice", c.TierForXP(99).Title)
	assert.Equal(t, "Apprentice", c.TierForXP(100).Title)
	assert.Equal(t, "Transcendent", c.TierForXP(12000).Title)

	assert.Equal(t, 100, c.NextLevelXP(1))
	assert.Equal(t, 250, c.NextLevelXP(2))
	// At the cap the next threshold is the cap itself.
	assert.Equal(t, 5000, c.NextLevelXP(10))
	assert.Equal(t, 250, c.CurrentLevelXP(3))
}

func TestAppendRejectsDuplicates(t *testing.T) {
	c := Default()

	err := c.Append(Quest{ID: "salah", Name: "Dup", Subtasks: []Subtask{{ID: "x", Name: "X", XP: 1}}})
	assert.Error(t, err)

	err = c.Append(Quest{ID: "custom-1", Name: "New"})
	assert.Error(t, err, "quests need at least one subtask")

	err = c.Append(Quest{ID: "custom-1", Name: "New", IsCustom: true,
		Subtasks: []Subtask{{ID: "custom-1-0", Name: "X", XP: 10}}})
	require.NoError(t, err)
	assert.NotNil(t, c.Quest("custom-1"))
	assert.Len(t, c.CustomQuests(), 1)
}

func TestValidateCatchesBadTables(t *testing.T) {
	c := Default()
	c.Levels[3].XPRequired = 1 // breaks ascending order
	assert.Error(t, c.Validate())

	c = Default()
	c.Multipliers[0] = MultiplierStep{MinStreak: 1, Multiplier: 1.0}
	assert.Error(t, c.Validate())

	c = Default()
	c.CriticalQuests = append(c.CriticalQuests, "ghost")
	assert.Error(t, c.Validate())

	c = Default()
	c.BadHabits[0].HPPenalty = 5
	assert.Error(t, c.Validate())
}

func TestAchievementPredicates(t *testing.T) {
	c := Default()

	snap := Snapshot{TotalXP: 10, Streak: 7, Hour: 12, TotalSubtasks: 10, CompletedToday: 10,
		QuestComplete: func(id string) bool { return id == "salah" }}

	assert.True(t, c.Rule("first-blood").Predicate(snap))
	assert.True(t, c.Rule("streak-7").Predicate(snap))
	assert.False(t, c.Rule("streak-30").Predicate(snap))
	assert.True(t, c.Rule("salah-master").Predicate(snap))
	assert.True(t, c.Rule("productive-day").Predicate(snap))
	assert.False(t, c.Rule("early-bird").Predicate(snap))
	assert.False(t, c.Rule("night-owl").Predicate(snap))

	snap.Hour = 6
	assert.True(t, c.Rule("early-bird").Predicate(snap))
	snap.Hour = 23
	assert.True(t, c.Rule("night-owl").Predicate(snap))
}
