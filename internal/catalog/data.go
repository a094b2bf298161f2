package catalog

// Default returns the built-in catalog. Overrides and custom quests are
// layered on top (see Load and Append).
func Default() *Catalog {
	return &Catalog{
		Quests: []Quest{
			{
				ID: "salah", Name: "Daily Salah", Icon: "🕌", Category: "spiritual",
				Description: "5 dnevnih namaza",
				Identity:    "Ti si osoba koja klanja 5 puta dnevno",
				Subtasks: []Subtask{
					{ID: "fajr", Name: "Fajr", XP: 15},
					{ID: "dhuhr", Name: "Dhuhr", XP: 10},
					{ID: "asr", Name: "Asr", XP: 10},
					{ID: "maghrib", Name: "Maghrib", XP: 10},
					{ID: "isha", Name: "Isha", XP: 15},
				},
				TwoMinuteRule: "Ustani i uzmi abdest",
				Color:         "#10b981",
				Duration:      15,
			},
			{
				ID: "tradermath", Name: "TraderMath Grind", Icon: "📊", Category: "career",
				Description: "Quant interview prep",
				Identity:    "Ti si budući quant trader",
				Subtasks: []Subtask{
					{ID: "tm-problems", Name: "Complete 3 problems", XP: 40},
				},
				TwoMinuteRule: "Otvori TraderMath i pročitaj 1 problem",
				HabitStack:    "Nakon Fajr namaza",
				Color:         "#f59e0b",
				Duration:      60,
			},
			{
				ID: "ml", Name: "ML Journey", Icon: "🤖", Category: "learning",
				Description: "Machine Learning učenje",
				Identity:    "Ti si ML engineer u nastajanju",
				Subtasks: []Subtask{
					{ID: "ml-study", Name: "Study session (30min)", XP: 35},
				},
				TwoMinuteRule: "Otvori kurs i pročitaj intro",
				Color:         "#8b5cf6",
			},
			{
				ID: "internship", Name: "Internship Hunt", Icon: "💼", Category: "career",
				Description: "Prijave za internshipe",
				Identity:    "Ti si proaktivan job seeker",
				Subtasks: []Subtask{
					{ID: "int-apply", Name: "Apply to 1 company", XP: 50},
				},
				TwoMinuteRule: "Otvori LinkedIn i pronađi 1 poziciju",
				Color:         "#06b6d4",
			},
			{
				ID: "master", Name: "Master Application", Icon: "🎓", Category: "career",
				Description: "Prijave za master program",
				Identity:    "Ti si budući master student",
				Subtasks: []Subtask{
					{ID: "master-work", Name: "Work on application", XP: 45},
				},
				TwoMinuteRule: "Otvori dokument i napiši 1 rečenicu",
				Color:         "#ec4899",
			},
			{
				ID: "job", Name: "Current Job", Icon: "👨‍💻", Category: "work",
				Description: "Radni zadaci",
				Identity:    "Ti si pouzdan i produktivan radnik",
				Subtasks: []Subtask{
					{ID: "job-tasks", Name: "Complete daily tasks", XP: 40},
				},
				TwoMinuteRule: "Otvori Slack/Email i provjeri inbox",
				Color:         "#3b82f6",
				Duration:      60,
			},
		},
		Levels: []LevelTier{
			{Level: 1, Title: "Novice", XPRequired: 0, Icon: "🌱"},
			{Level: 2, Title: "Apprentice", XPRequired: 100, Icon: "🌿"},
			{Level: 3, Title: "Warrior", XPRequired: 250, Icon: "⚔️"},
			{Level: 4, Title: "Knight", XPRequired: 500, Icon: "🛡️"},
			{Level: 5, Title: "Champion", XPRequired: 800, Icon: "🏆"},
			{Level: 6, Title: "Master", XPRequired: 1200, Icon: "👑"},
			{Level: 7, Title: "Grandmaster", XPRequired: 1800, Icon: "💎"},
			{Level: 8, Title: "Legend", XPRequired: 2500, Icon: "🌟"},
			{Level: 9, Title: "Mythic", XPRequired: 3500, Icon: "🔥"},
			{Level: 10, Title: "Transcendent", XPRequired: 5000, Icon: "✨"},
		},
		Multipliers: []MultiplierStep{
			{MinStreak: 0, Multiplier: 1.0},
			{MinStreak: 3, Multiplier: 1.25},
			{MinStreak: 7, Multiplier: 1.5},
			{MinStreak: 14, Multiplier: 1.75},
			{MinStreak: 30, Multiplier: 2.0},
			{MinStreak: 60, Multiplier: 2.5},
			{MinStreak: 90, Multiplier: 3.0},
		},
		Rules: defaultRules(),
		BadHabits: []BadHabit{
			{
				ID: "doomscroll", Name: "Doomscrolling", Icon: "📱",
				Description: "Više od 30 min na društvenim mrežama",
				XPPenalty:   -15, HPPenalty: -5,
			},
			{
				ID: "junk-food", Name: "Junk Food", Icon: "🍔",
				Description: "Brza hrana umjesto pravog obroka",
				XPPenalty:   -10, HPPenalty: -10,
			},
			{
				ID: "late-night", Name: "Late Night", Icon: "🌃",
				Description: "Budan poslije 1h bez razloga",
				XPPenalty:   -20, HPPenalty: -10,
			},
			{
				ID: "skipped-day", Name: "Skipped Everything", Icon: "🛋️",
				Description: "Dan bez ijednog završenog taska",
				XPPenalty:   -25, HPPenalty: -15,
			},
		},
		Quotes: []string{
			"Svaki put kad završiš task, glasaš za osobu koju želiš postati.",
			"Nisi ti osoba koja prokrastinira. Ti si osoba koja djeluje.",
			"1% bolje svaki dan = 37x bolje za godinu dana.",
			"Motivacija te pokrene. Navika te drži.",
			"Profesionalci se drže rasporeda. Amateri čekaju inspiraciju.",
			"Ne moraš biti sjajan da počneš, ali moraš početi da budeš sjajan.",
			"Tvoja budućnost ovisi o onome što radiš danas.",
			"Discipline is choosing between what you want now and what you want most.",
			"The pain of discipline weighs ounces. The pain of regret weighs tons.",
			"You don't rise to the level of your goals. You fall to the level of your systems.",
		},
		CriticalQuests:     []string{"salah", "tradermath"},
		MissedQuestPenalty: 10,
	}
}
