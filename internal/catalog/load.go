package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape of an optional catalog override file.
// Sections that are present replace the corresponding defaults; extra
// quests are appended after the built-in ones.
type Overrides struct {
	Quests         []Quest          `yaml:"quests"`
	Levels         []LevelTier      `yaml:"levels"`
	Multipliers    []MultiplierStep `yaml:"multipliers"`
	BadHabits      []BadHabit       `yaml:"bad_habits"`
	CriticalQuests []string         `yaml:"critical_quests"`
	MissedPenalty  *int             `yaml:"missed_quest_penalty"`
}

// Load builds the catalog: defaults, then the override file when path
// is non-empty. The result is validated before being returned.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog overrides: %w", err)
		}
		var ov Overrides
		if err := yaml.Unmarshal(data, &ov); err != nil {
			return nil, fmt.Errorf("parse catalog overrides: %w", err)
		}
		applyOverrides(c, &ov)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog invalid: %w", err)
	}
	return c, nil
}

func applyOverrides(c *Catalog, ov *Overrides) {
	for _, q := range ov.Quests {
		if existing := c.Quest(q.ID); existing != nil {
			*existing = q
			continue
		}
		c.Quests = append(c.Quests, q)
	}
	if len(ov.Levels) > 0 {
		c.Levels = ov.Levels
	}
	if len(ov.Multipliers) > 0 {
		c.Multipliers = ov.Multipliers
	}
	if len(ov.BadHabits) > 0 {
		c.BadHabits = ov.BadHabits
	}
	if len(ov.CriticalQuests) > 0 {
		c.CriticalQuests = ov.CriticalQuests
	}
	if ov.MissedPenalty != nil {
		c.MissedQuestPenalty = *ov.MissedPenalty
	}
}
