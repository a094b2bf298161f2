package engine

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/mfehric/gamify/internal/catalog"
)

type fakeStore struct {
	st     *State
	custom []catalog.Quest
	saves  int
}

func (f *fakeStore) Load(ctx context.Context) (*State, error) { return f.st, nil }

func (f *fakeStore) Save(ctx context.Context, st *State) error {
	f.st = st
	f.saves++
	return nil
}

func (f *fakeStore) LoadCustomQuests(ctx context.Context) ([]catalog.Quest, error) {
	return f.custom, nil
}

func (f *fakeStore) SaveCustomQuest(ctx context.Context, q catalog.Quest) error {
	f.custom = append(f.custom, q)
	return nil
}

func (f *fakeStore) Reset(ctx context.Context) error {
	f.st = nil
	f.custom = nil
	return nil
}

func newTestService(t *testing.T, store *fakeStore) *Service {
	t.Helper()
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	return NewService(store, cat, fixedClock{noon}, rand.New(rand.NewSource(1)), "Tester")
}

func TestServiceOpenFreshStart(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	res, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if res.Ran {
		t.Fatalf("fresh start should not run a rollover")
	}
	if svc.State() == nil || svc.State().Player.HP != 100 {
		t.Fatalf("fresh state not built")
	}
	if store.saves != 1 {
		t.Fatalf("open should persist once, got %d saves", store.saves)
	}
}

func TestServiceOpenRestoresCustomQuests(t *testing.T) {
	store := &fakeStore{custom: []catalog.Quest{{
		ID:       "custom-1",
		Name:     "Old Custom",
		Subtasks: []catalog.Subtask{{ID: "custom-1-0", Name: "Do it", XP: 35}},
		IsCustom: true,
	}}}
	svc := newTestService(t, store)

	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if svc.Catalog().Quest("custom-1") == nil {
		t.Fatalf("custom quest not restored into the catalog")
	}
	if _, ok := svc.State().Tasks["custom-1"]; !ok {
		t.Fatalf("custom quest missing task state")
	}
}

func TestServiceTogglePersists(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	saves := store.saves

	res, err := svc.Toggle(context.Background(), "salah", "fajr")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.XPDelta != 15 {
		t.Fatalf("unexpected delta %d", res.XPDelta)
	}
	if store.saves != saves+1 {
		t.Fatalf("toggle should save, got %d saves", store.saves)
	}
}

func TestServiceCreateQuest(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}

	q, err := svc.CreateQuest(context.Background(), "Side project coding", "", []string{"Write tests", "Ship feature"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(q.ID, "custom-") {
		t.Fatalf("custom quest id = %q", q.ID)
	}
	if q.Category != "custom" || !q.IsCustom {
		t.Fatalf("category = %q isCustom = %v", q.Category, q.IsCustom)
	}
	if q.Identity == "" || q.Icon == "" || q.TwoMinuteRule == "" {
		t.Fatalf("classifier fields missing: %+v", q)
	}
	if len(q.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(q.Subtasks))
	}
	for _, sub := range q.Subtasks {
		if sub.XP < 25 || sub.XP > 44 {
			t.Fatalf("subtask XP %d outside 25..44", sub.XP)
		}
	}
	if len(store.custom) != 1 {
		t.Fatalf("custom quest not persisted")
	}
	if _, ok := svc.State().Tasks[q.ID]; !ok {
		t.Fatalf("new quest missing task state")
	}
}

func TestServiceCreateQuestDefaultSubtask(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}

	q, err := svc.CreateQuest(context.Background(), "Zalijevanje cvijeća", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(q.Subtasks) != 1 {
		t.Fatalf("expected the default subtask, got %d", len(q.Subtasks))
	}
	if q.Subtasks[0].XP != 35 || !strings.HasPrefix(q.Subtasks[0].Name, "Završi") {
		t.Fatalf("default subtask = %+v", q.Subtasks[0])
	}
}

func TestServiceCreateQuestRejectsEmptyName(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.CreateQuest(context.Background(), "   ", "", nil); err == nil {
		t.Fatalf("blank name should be rejected")
	}
}

func TestServiceResetToday(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), "salah", "fajr"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := svc.ResetToday(context.Background()); err != nil {
		t.Fatalf("reset today: %v", err)
	}
	st := svc.State()
	if len(st.CompletedToday) != 0 {
		t.Fatalf("completedToday not cleared")
	}
	if st.Tasks["salah"].Subtasks["fajr"] {
		t.Fatalf("subtask flag not cleared")
	}
	// XP earned today is kept.
	if st.Player.TotalXP != 15 {
		t.Fatalf("reset today must not touch XP, got %d", st.Player.TotalXP)
	}
}

func TestServiceFullReset(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), "salah", "fajr"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := svc.FullReset(context.Background()); err != nil {
		t.Fatalf("full reset: %v", err)
	}
	st := svc.State()
	if st.Player.TotalXP != 0 || st.Player.Level != 1 || len(st.Achievements) != 0 {
		t.Fatalf("full reset should rebuild defaults: %+v", st.Player)
	}
}

func TestServiceGreetingBands(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if got := svc.Greeting(); !strings.HasPrefix(got, "Dobar dan") {
		t.Fatalf("noon greeting = %q", got)
	}
}

func TestServiceCompoundProgress(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)
	if _, err := svc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}

	if got := svc.CompoundProgress(); got != 1.0 {
		t.Fatalf("streak 0 should compound to 1.0, got %v", got)
	}
	svc.State().Player.Streak = 2
	got := svc.CompoundProgress()
	if got < 1.0200 || got > 1.0202 {
		t.Fatalf("streak 2 should compound to ~1.0201, got %v", got)
	}
}
