package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mfehric/gamify/internal/catalog"
	"github.com/mfehric/gamify/internal/engine"
)

const mainPlayerKey = "main"

// Store implements engine.Store over SQLite.
type Store struct {
	db *sql.DB

	// historySaved tracks how many history entries of the loaded state
	// are already persisted, so Save only appends the new tail.
	historySaved int
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load rehydrates the state, or returns (nil, nil) when no player row
// exists yet. Missing fields from older saves come back as column
// defaults (hp/max_hp 100, streak 0); a missing reset marker is
// backfilled from the last active date.
func (s *Store) Load(ctx context.Context) (*engine.State, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, level, xp, hp, max_hp, total_xp, streak,
			last_active_date, last_reset_date, created_at,
			sound_enabled, notifications_enabled
		FROM player WHERE key = ?
	`, mainPlayerKey)

	st := &engine.State{
		Tasks:          map[string]*engine.TaskState{},
		CompletedToday: map[string]bool{},
	}
	var lastActive, lastReset sql.NullString
	var createdAt sql.NullTime
	var sound, notif int
	err := row.Scan(
		&st.Player.Name, &st.Player.Level, &st.Player.XP,
		&st.Player.HP, &st.Player.MaxHP, &st.Player.TotalXP,
		&st.Player.Streak, &lastActive, &lastReset, &createdAt,
		&sound, &notif,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("player load: %w", err)
	}
	st.Player.LastActiveDate = lastActive.String
	st.Player.LastResetDate = lastReset.String
	if st.Player.LastResetDate == "" {
		st.Player.LastResetDate = st.Player.LastActiveDate
	}
	if createdAt.Valid {
		st.Player.CreatedAt = createdAt.Time
	}
	if st.Player.MaxHP < 1 {
		st.Player.MaxHP = 100
	}
	if st.Player.HP > st.Player.MaxHP {
		st.Player.HP = st.Player.MaxHP
	}
	st.Settings.SoundEnabled = sound != 0
	st.Settings.NotificationsEnabled = notif != 0

	if err := s.loadTasks(ctx, st); err != nil {
		return nil, err
	}
	if err := s.loadCompletedToday(ctx, st); err != nil {
		return nil, err
	}
	if err := s.loadAchievements(ctx, st); err != nil {
		return nil, err
	}
	if err := s.loadHistory(ctx, st); err != nil {
		return nil, err
	}
	s.historySaved = len(st.History)
	return st, nil
}

func (s *Store) loadTasks(ctx context.Context, st *engine.State) error {
	rows, err := s.db.QueryContext(ctx, `SELECT quest_id, subtask_id, completed FROM subtask_state`)
	if err != nil {
		return fmt.Errorf("subtask state load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questID, subtaskID string
		var completed int
		if err := rows.Scan(&questID, &subtaskID, &completed); err != nil {
			return fmt.Errorf("subtask state scan: %w", err)
		}
		ts, ok := st.Tasks[questID]
		if !ok {
			ts = &engine.TaskState{QuestID: questID, Subtasks: map[string]bool{}}
			st.Tasks[questID] = ts
		}
		ts.Subtasks[subtaskID] = completed != 0
	}
	return rows.Err()
}

func (s *Store) loadCompletedToday(ctx context.Context, st *engine.State) error {
	rows, err := s.db.QueryContext(ctx, `SELECT entry FROM completed_today`)
	if err != nil {
		return fmt.Errorf("completed today load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return fmt.Errorf("completed today scan: %w", err)
		}
		st.CompletedToday[entry] = true
	}
	return rows.Err()
}

func (s *Store) loadAchievements(ctx context.Context, st *engine.State) error {
	// rowid order preserves unlock order.
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM achievements ORDER BY rowid ASC`)
	if err != nil {
		return fmt.Errorf("achievements load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("achievements scan: %w", err)
		}
		st.Achievements = append(st.Achievements, id)
	}
	return rows.Err()
}

func (s *Store) loadHistory(ctx context.Context, st *engine.State) error {
	rows, err := s.db.QueryContext(ctx, `SELECT at, kind, detail, xp, hp FROM history ORDER BY id ASC`)
	if err != nil {
		return fmt.Errorf("history load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h engine.HistoryEntry
		var detail sql.NullString
		if err := rows.Scan(&h.At, &h.Kind, &detail, &h.XP, &h.HP); err != nil {
			return fmt.Errorf("history scan: %w", err)
		}
		h.Detail = detail.String
		st.History = append(st.History, h)
	}
	return rows.Err()
}

// Save writes the full aggregate in one transaction. Achievements are
// insert-or-ignore (append-only); history persists only the new tail.
func (s *Store) Save(ctx context.Context, st *engine.State) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		createdAt := st.Player.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO player (
				key, name, level, xp, hp, max_hp, total_xp, streak,
				last_active_date, last_reset_date, created_at,
				sound_enabled, notifications_enabled
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				name = excluded.name,
				level = excluded.level,
				xp = excluded.xp,
				hp = excluded.hp,
				max_hp = excluded.max_hp,
				total_xp = excluded.total_xp,
				streak = excluded.streak,
				last_active_date = excluded.last_active_date,
				last_reset_date = excluded.last_reset_date,
				sound_enabled = excluded.sound_enabled,
				notifications_enabled = excluded.notifications_enabled
		`, mainPlayerKey, st.Player.Name, st.Player.Level, st.Player.XP,
			st.Player.HP, st.Player.MaxHP, st.Player.TotalXP, st.Player.Streak,
			nullIfEmpty(st.Player.LastActiveDate), nullIfEmpty(st.Player.LastResetDate),
			createdAt, boolToInt(st.Settings.SoundEnabled), boolToInt(st.Settings.NotificationsEnabled))
		if err != nil {
			return fmt.Errorf("player save: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM subtask_state`); err != nil {
			return fmt.Errorf("subtask state clear: %w", err)
		}
		for questID, ts := range st.Tasks {
			for subtaskID, completed := range ts.Subtasks {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO subtask_state (quest_id, subtask_id, completed) VALUES (?, ?, ?)
				`, questID, subtaskID, boolToInt(completed)); err != nil {
					return fmt.Errorf("subtask state save: %w", err)
				}
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM completed_today`); err != nil {
			return fmt.Errorf("completed today clear: %w", err)
		}
		for entry := range st.CompletedToday {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO completed_today (entry) VALUES (?)
			`, entry); err != nil {
				return fmt.Errorf("completed today save: %w", err)
			}
		}

		for _, id := range st.Achievements {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO achievements (id) VALUES (?)
			`, id); err != nil {
				return fmt.Errorf("achievement save: %w", err)
			}
		}

		for _, h := range st.History[s.historySaved:] {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO history (at, kind, detail, xp, hp) VALUES (?, ?, ?, ?, ?)
			`, h.At, h.Kind, h.Detail, h.XP, h.HP); err != nil {
				return fmt.Errorf("history save: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.historySaved = len(st.History)
	return nil
}

// LoadCustomQuests returns runtime-created quests, stable by id.
func (s *Store) LoadCustomQuests(ctx context.Context) ([]catalog.Quest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM custom_quests ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("custom quests load: %w", err)
	}
	defer rows.Close()

	var out []catalog.Quest
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("custom quests scan: %w", err)
		}
		var q catalog.Quest
		if err := json.Unmarshal([]byte(data), &q); err != nil {
			return nil, fmt.Errorf("custom quest decode: %w", err)
		}
		q.IsCustom = true
		out = append(out, q)
	}
	return out, rows.Err()
}

// SaveCustomQuest persists one runtime-created quest.
func (s *Store) SaveCustomQuest(ctx context.Context, q catalog.Quest) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("custom quest encode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_quests (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, q.ID, string(data)); err != nil {
		return fmt.Errorf("custom quest save: %w", err)
	}
	return nil
}

// Reset wipes every table.
func (s *Store) Reset(ctx context.Context) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"player", "subtask_state", "completed_today", "achievements", "custom_quests", "history"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("reset %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.historySaved = 0
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
