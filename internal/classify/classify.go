// Package classify maps free-text quest names onto category profiles
// for custom quest creation. Matching is keyword-based and
// first-match-wins over a fixed category order; cosmetic fields are
// picked at random from the matched category's option lists, so
// repeated calls for the same name may differ visually.
package classify

import (
	"math/rand"
	"strings"
)

// Profile is the classifier output used to flesh out a custom quest.
type Profile struct {
	Category      string
	Icon          string
	Color         string
	Identity      string
	TwoMinuteRule string
	Duration      int // minutes
}

type category struct {
	name       string
	keywords   []string
	icons      []string
	colors     []string
	identities []string
	twoMinute  []string
	duration   int
}

// Category order is significant: the first category containing a
// keyword substring match wins.
var categories = []category{
	{
		name:     "education",
		keywords: []string{"faks", "fakultet", "učenje", "studij", "ispit", "kolokvij", "predavanje", "škola", "kurs", "course", "tutorial", "learn", "study"},
		icons:    []string{"📚", "🎓", "📖", "✏️", "🧠"},
		colors:   []string{"#8b5cf6", "#a855f7", "#7c3aed"},
		identities: []string{
			"Ti si disciplinirani student",
			"Ti si osoba koja stalno uči i napreduje",
			"Ti si budući stručnjak u svom polju",
		},
		twoMinute: []string{
			"Otvori skriptu i pročitaj jednu stranicu",
			"Otvori materijale i pregledaj naslove",
			"Sjedi za stol i otvori bilježnicu",
		},
		duration: 60,
	},
	{
		name:     "fitness",
		keywords: []string{"teretana", "gym", "vježba", "trening", "sport", "trčanje", "run", "workout", "fitness", "zdravlje"},
		icons:    []string{"💪", "🏋️", "🏃", "🧘", "🚴"},
		colors:   []string{"#ef4444", "#f97316", "#dc2626"},
		identities: []string{
			"Ti si osoba koja brine o svom tijelu",
			"Ti si disciplinirani sportaš",
			"Ti si zdrav i aktivan čovjek",
		},
		twoMinute: []string{
			"Obuci sportsku odjeću",
			"Napravi 5 čučnjeva",
			"Izađi van i prošetaj 2 minute",
		},
		duration: 90,
	},
	{
		name:     "career",
		keywords: []string{"posao", "karijera", "career", "job", "work", "projekt", "zadatak", "meeting", "internship", "prijava"},
		icons:    []string{"💼", "👔", "📊", "💻", "📈"},
		colors:   []string{"#3b82f6", "#0ea5e9", "#2563eb"},
		identities: []string{
			"Ti si pouzdan profesionalac",
			"Ti si ambiciozan i produktivan",
			"Ti si osoba koja gradi svoju karijeru",
		},
		twoMinute: []string{
			"Otvori laptop i provjeri email",
			"Napravi listu prioriteta za danas",
			"Pošalji jednu poruku ili email",
		},
		duration: 60,
	},
	{
		name:     "spiritual",
		keywords: []string{"namaz", "salah", "dova", "quran", "kuran", "ibadet", "meditacija", "molitva", "duhovno"},
		icons:    []string{"🕌", "🤲", "📿", "🌙", "⭐"},
		colors:   []string{"#10b981", "#059669", "#047857"},
		identities: []string{
			"Ti si osoba koja brine o svojoj duhovnosti",
			"Ti si dosljedan u svojim ibadetima",
			"Ti si čovjek jake vjere",
		},
		twoMinute: []string{
			"Uzmi abdest",
			"Prouči jednu dovu",
			"Sjedni i razmisli o zahvalnosti",
		},
		duration: 15,
	},
	{
		name:     "reading",
		keywords: []string{"čitanje", "knjiga", "read", "book", "literatura", "roman", "lektira"},
		icons:    []string{"📚", "📖", "📕", "📗", "📘"},
		colors:   []string{"#f59e0b", "#d97706", "#b45309"},
		identities: []string{
			"Ti si osoba koja čita svaki dan",
			"Ti si intelektualac u nastajanju",
			"Ti si čovjek široke kulture",
		},
		twoMinute: []string{
			"Uzmi knjigu i pročitaj jednu stranicu",
			"Otvori e-reader",
			"Sjedni u udoban kutak s knjigom",
		},
		duration: 30,
	},
	{
		name:     "creative",
		keywords: []string{"pisanje", "crtanje", "dizajn", "kreativ", "art", "muzika", "glazba", "fotografija"},
		icons:    []string{"🎨", "✍️", "🎵", "📷", "🎭"},
		colors:   []string{"#ec4899", "#db2777", "#be185d"},
		identities: []string{
			"Ti si kreativna duša",
			"Ti si umjetnik koji stvara svaki dan",
			"Ti si osoba puna kreativne energije",
		},
		twoMinute: []string{
			"Uzmi olovku i nacrtaj jednu liniju",
			"Otvori program i napravi novi dokument",
			"Pusti omiljenu inspirativnu pjesmu",
		},
		duration: 60,
	},
	{
		name:     "social",
		keywords: []string{"porodica", "obitelj", "prijatelj", "druženje", "family", "friend", "social", "poziv"},
		icons:    []string{"👨‍👩‍👧", "🤝", "💬", "☎️", "❤️"},
		colors:   []string{"#06b6d4", "#0891b2", "#0e7490"},
		identities: []string{
			"Ti si osoba koja cijeni odnose",
			"Ti si dobar prijatelj i član porodice",
			"Ti si čovjek koji njeguje veze s drugima",
		},
		twoMinute: []string{
			"Pošalji poruku jednoj bliskoj osobi",
			"Nazovi nekog tko ti je drag",
			"Planiraj jedno druženje",
		},
		duration: 60,
	},
	{
		name:     "coding",
		keywords: []string{"kod", "code", "coding", "programming", "programiranje", "develop", "software", "web", "app"},
		icons:    []string{"💻", "⌨️", "🖥️", "👨‍💻", "🔧"},
		colors:   []string{"#22c55e", "#16a34a", "#15803d"},
		identities: []string{
			"Ti si developer u nastajanju",
			"Ti si osoba koja gradi budućnost kroz kod",
			"Ti si tech enthusiast",
		},
		twoMinute: []string{
			"Otvori editor i napiši jednu liniju koda",
			"Otvori dokumentaciju i pročitaj intro",
			"Pokreni terminal i provjeri git status",
		},
		duration: 90,
	},
}

func fallback(name string) category {
	return category{
		name:   "custom",
		icons:  []string{"📋", "✅", "📌", "🎯", "⭐"},
		colors: []string{"#7c3aed", "#8b5cf6", "#a855f7"},
		identities: []string{
			"Ti si osoba koja radi na: " + name,
			"Ti si disciplinirana osoba",
			"Ti si čovjek koji drži svoje obećanje sebi",
		},
		twoMinute: []string{
			"Otvori potrebne alate i počni",
			"Napravi prvi mali korak",
			"Sjedni i fokusiraj se 2 minute",
		},
		duration: 30,
	}
}

// Classify returns the profile for a quest name. The rng is injected
// so callers (and tests) control the cosmetic randomness.
func Classify(name string, rng *rand.Rand) Profile {
	lower := strings.ToLower(name)

	matched := fallback(name)
	for _, cat := range categories {
		if containsAny(lower, cat.keywords) {
			matched = cat
			break
		}
	}

	return Profile{
		Category:      matched.name,
		Icon:          pick(rng, matched.icons),
		Color:         pick(rng, matched.colors),
		Identity:      pick(rng, matched.identities),
		TwoMinuteRule: pick(rng, matched.twoMinute),
		Duration:      matched.duration,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func pick(rng *rand.Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}
