package catalog

// Snapshot is the read-only view achievement predicates evaluate
// against. QuestComplete reports whether every subtask of the given
// quest is currently marked complete.
type Snapshot struct {
	Level          int
	XP             int
	TotalXP        int
	Streak         int
	HP             int
	Hour           int // local hour at evaluation time
	CompletedToday int
	TotalSubtasks  int
	QuestComplete  func(questID string) bool
}

// AchievementRule pairs an achievement's display data with its unlock
// predicate. Predicates must be pure and side-effect free; they are
// evaluated in catalog order.
type AchievementRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Predicate   func(Snapshot) bool
}

func defaultRules() []AchievementRule {
	return []AchievementRule{
		{
			ID: "first-blood", Name: "First Blood", Description: "Završi prvi task", Icon: "🩸",
			Predicate: func(s Snapshot) bool { return s.TotalXP > 0 },
		},
		{
			ID: "early-bird", Name: "Early Bird", Description: "Završi task prije 7h", Icon: "🐦",
			Predicate: func(s Snapshot) bool { return s.Hour < 7 },
		},
		{
			ID: "streak-3", Name: "Streak Starter", Description: "3 dana streak", Icon: "🔥",
			Predicate: func(s Snapshot) bool { return s.Streak >= 3 },
		},
		{
			ID: "streak-7", Name: "Week Warrior", Description: "7 dana streak", Icon: "⚡",
			Predicate: func(s Snapshot) bool { return s.Streak >= 7 },
		},
		{
			ID: "streak-30", Name: "Monthly Master", Description: "30 dana streak", Icon: "🌙",
			Predicate: func(s Snapshot) bool { return s.Streak >= 30 },
		},
		{
			ID: "level-5", Name: "Rising Star", Description: "Dosegni Level 5", Icon: "⭐",
			Predicate: func(s Snapshot) bool { return s.Level >= 5 },
		},
		{
			ID: "level-10", Name: "Transcendence", Description: "Dosegni Level 10", Icon: "🌌",
			Predicate: func(s Snapshot) bool { return s.Level >= 10 },
		},
		{
			ID: "salah-master", Name: "Devoted", Description: "Klanjaj svih 5 namaza 7 dana", Icon: "🕌",
			Predicate: func(s Snapshot) bool {
				return s.Streak >= 7 && s.QuestComplete != nil && s.QuestComplete("salah")
			},
		},
		{
			ID: "productive-day", Name: "Productive Day", Description: "Završi sve dnevne taskove", Icon: "💪",
			Predicate: func(s Snapshot) bool {
				return s.TotalSubtasks > 0 && s.CompletedToday >= s.TotalSubtasks
			},
		},
		{
			ID: "night-owl", Name: "Night Owl", Description: "Završi task nakon 23h", Icon: "🦉",
			Predicate: func(s Snapshot) bool { return s.Hour >= 23 },
		},
		{
			ID: "consistency", Name: "Atomic", Description: "1% bolje 14 dana zaredom", Icon: "⚛️",
			Predicate: func(s Snapshot) bool { return s.Streak >= 14 },
		},
		{
			ID: "xp-1000", Name: "XP Hunter", Description: "Sakupi 1000 XP", Icon: "💰",
			Predicate: func(s Snapshot) bool { return s.TotalXP >= 1000 },
		},
	}
}
