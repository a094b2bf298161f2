package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mfehric/gamify/internal/catalog"
	"github.com/mfehric/gamify/internal/classify"
)

// Store is the persistence collaborator. Absence of prior state is
// reported as (nil, nil) from Load, which triggers default-state
// construction.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
	LoadCustomQuests(ctx context.Context) ([]catalog.Quest, error)
	SaveCustomQuest(ctx context.Context, q catalog.Quest) error
	Reset(ctx context.Context) error
}

// Service owns the in-memory state for a session: it loads (or
// defaults) the state, reconciles the day exactly once, and persists
// after every mutating operation. Operations are synchronous; nothing
// here is safe for concurrent use, and nothing needs to be.
type Service struct {
	store Store
	cat   *catalog.Catalog
	eng   *Engine
	rng   *rand.Rand

	playerName string
	st         *State
}

func NewService(store Store, cat *catalog.Catalog, clock Clock, rng *rand.Rand, playerName string) *Service {
	if playerName == "" {
		playerName = "Player"
	}
	return &Service{
		store:      store,
		cat:        cat,
		eng:        New(cat, clock),
		rng:        rng,
		playerName: playerName,
	}
}

// Open starts a session: rehydrates custom quests into the catalog,
// loads or builds the state, runs the day reconciliation, and saves.
// The rollover result is returned so the caller can surface penalties.
func (s *Service) Open(ctx context.Context) (*RolloverResult, error) {
	custom, err := s.store.LoadCustomQuests(ctx)
	if err != nil {
		return nil, err
	}
	for _, q := range custom {
		if s.cat.Quest(q.ID) == nil {
			if err := s.cat.Append(q); err != nil {
				return nil, fmt.Errorf("restore custom quest: %w", err)
			}
		}
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		st = NewState(s.cat, s.playerName, s.eng.Clock.Now())
	}
	st.EnsureTaskStates(s.cat)

	res := s.eng.ReconcileDay(st, Today(s.eng.Clock.Now()))
	s.st = st

	if err := s.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return res, nil
}

// State returns the session state snapshot for rendering.
func (s *Service) State() *State { return s.st }

// Catalog returns the rule configuration.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// Engine exposes the pure rule engine (read-only helpers).
func (s *Service) Engine() *Engine { return s.eng }

// Toggle flips a subtask and persists the result.
func (s *Service) Toggle(ctx context.Context, questID, subtaskID string) (*ToggleResult, error) {
	res, err := s.eng.ToggleSubtask(s.st, questID, subtaskID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, s.st); err != nil {
		return nil, err
	}
	return res, nil
}

// Slip reports a bad habit and persists the result.
func (s *Service) Slip(ctx context.Context, habitID string) (*SlipResult, error) {
	res, err := s.eng.ReportBadHabit(s.st, habitID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, s.st); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateQuest builds a custom quest from a free-text name: the
// classifier supplies icon, color, identity, two-minute rule, and
// duration; subtasks get 25–44 XP each, or one default subtask worth
// 35 XP when none are given. The quest joins the catalog and is
// persisted so it survives reload.
func (s *Service) CreateQuest(ctx context.Context, name, description string, subtaskNames []string) (*catalog.Quest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("quest name is required")
	}
	if description == "" {
		description = "Dnevni zadaci za: " + name
	}

	profile := classify.Classify(name, s.rng)
	stamp := s.eng.Clock.Now().UnixMilli()
	id := fmt.Sprintf("custom-%d", stamp)

	var subtasks []catalog.Subtask
	for i, sn := range subtaskNames {
		sn = strings.TrimSpace(sn)
		if sn == "" {
			continue
		}
		subtasks = append(subtasks, catalog.Subtask{
			ID:   fmt.Sprintf("custom-%d-%d", stamp, i),
			Name: sn,
			XP:   25 + s.rng.Intn(20),
		})
	}
	if len(subtasks) == 0 {
		subtasks = []catalog.Subtask{{
			ID:   fmt.Sprintf("custom-%d-0", stamp),
			Name: "Završi " + name,
			XP:   35,
		}}
	}

	q := catalog.Quest{
		ID:            id,
		Name:          name,
		Icon:          profile.Icon,
		Category:      "custom",
		Description:   description,
		Identity:      profile.Identity,
		Subtasks:      subtasks,
		TwoMinuteRule: profile.TwoMinuteRule,
		Color:         profile.Color,
		Duration:      profile.Duration,
		IsCustom:      true,
	}
	if err := s.cat.Append(q); err != nil {
		return nil, err
	}
	s.st.EnsureTaskStates(s.cat)

	if err := s.store.SaveCustomQuest(ctx, q); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, s.st); err != nil {
		return nil, err
	}
	return s.cat.Quest(id), nil
}

// ResetToday clears today's completions and subtask flags without
// touching XP, streak, or achievements.
func (s *Service) ResetToday(ctx context.Context) error {
	s.st.CompletedToday = map[string]bool{}
	for _, ts := range s.st.Tasks {
		for id := range ts.Subtasks {
			ts.Subtasks[id] = false
		}
	}
	return s.store.Save(ctx, s.st)
}

// FullReset wipes all persisted state and rebuilds the default.
func (s *Service) FullReset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.st = NewState(s.cat, s.playerName, s.eng.Clock.Now())
	return s.store.Save(ctx, s.st)
}

// Quote picks a motivational quote at random.
func (s *Service) Quote() string {
	if len(s.cat.Quotes) == 0 {
		return ""
	}
	return s.cat.Quotes[s.rng.Intn(len(s.cat.Quotes))]
}

// Greeting returns the time-of-day greeting.
func (s *Service) Greeting() string {
	switch hour := s.eng.Clock.Now().Hour(); {
	case hour >= 4 && hour < 12:
		return "Dobro jutro! 🌅 Vrijeme za Fajr i produktivan dan."
	case hour >= 12 && hour < 17:
		return "Dobar dan! ☀️ Nastavi graditi navike."
	case hour >= 17 && hour < 21:
		return "Dobra večer! 🌆 Završi dnevne zadatke."
	default:
		return "Kasno je! 🌙 Ne zaboravi Isha namaz."
	}
}

// IdentityFlash occasionally returns the quest's identity statement
// after a completion (roughly 3 times out of 10), empty otherwise.
func (s *Service) IdentityFlash(questID string) string {
	q := s.cat.Quest(questID)
	if q == nil || q.Identity == "" {
		return ""
	}
	if s.rng.Float64() > 0.7 {
		return q.Identity
	}
	return ""
}

// CompoundProgress returns the 1.01^streak compound-improvement figure.
func (s *Service) CompoundProgress() float64 {
	figure := 1.0
	for i := 0; i < s.st.Player.Streak; i++ {
		figure *= 1.01
	}
	return figure
}
