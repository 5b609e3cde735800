package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/levelup/internal/models"
	"github.com/julianstephens/levelup/internal/progress"
)

// SQLiteStore is the default storage backend. The progression aggregate lives
// in a single row with nested structures as JSON columns; daily logs get a
// table of their own so a week of history stays queryable.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS progression (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	level INTEGER NOT NULL,
	xp INTEGER NOT NULL,
	xp_needed INTEGER NOT NULL,
	total_xp INTEGER NOT NULL,
	streak INTEGER NOT NULL,
	overall_streak INTEGER NOT NULL,
	habits_completed INTEGER NOT NULL,
	daily_habits TEXT NOT NULL,
	weekly_stats TEXT NOT NULL,
	weight REAL,
	waist REAL,
	energy INTEGER NOT NULL,
	unlocked_badges TEXT NOT NULL,
	current_day TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_logs (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	xp INTEGER NOT NULL,
	habits TEXT NOT NULL
);
`

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the singleton row on first run.
	if _, err := s.GetState(); err != nil {
		if err := s.SaveState(progress.NewState(time.Now())); err != nil {
			return fmt.Errorf("failed to save initial state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'levelup init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.validateSchema(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) validateSchema() error {
	for _, table := range []string{"progression", "daily_logs"} {
		var count int
		row := s.db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name COLLATE NOCASE = ?", table)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("storage is missing table %q; re-run 'levelup init' or restore a backup", table)
		}
	}
	return nil
}

func (s *SQLiteStore) GetState() (*models.State, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT level, xp, xp_needed, total_xp, streak, overall_streak,
		       habits_completed, daily_habits, weekly_stats, weight, waist,
		       energy, unlocked_badges, current_day
		FROM progression WHERE id = 1`)

	state := &models.State{}
	var habitsJSON, weeklyJSON, badgesJSON string
	var weight, waist sql.NullFloat64

	err := row.Scan(&state.Level, &state.XP, &state.XPNeeded, &state.TotalXP,
		&state.Streak, &state.OverallStreak, &state.HabitsCompleted,
		&habitsJSON, &weeklyJSON, &weight, &waist,
		&state.Energy, &badgesJSON, &state.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read progression: %w", err)
	}

	if err := json.Unmarshal([]byte(habitsJSON), &state.DailyHabits); err != nil {
		return nil, fmt.Errorf("failed to parse daily habits: %w", err)
	}
	if err := json.Unmarshal([]byte(weeklyJSON), &state.WeeklyStats); err != nil {
		return nil, fmt.Errorf("failed to parse weekly stats: %w", err)
	}
	if err := json.Unmarshal([]byte(badgesJSON), &state.UnlockedBadges); err != nil {
		return nil, fmt.Errorf("failed to parse badges: %w", err)
	}
	if weight.Valid {
		state.Weight = &weight.Float64
	}
	if waist.Valid {
		state.Waist = &waist.Float64
	}

	state.DailyLogs = map[string]models.DailyLog{}
	rows, err := s.db.Query(`SELECT id, date, xp, habits FROM daily_logs`)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var log models.DailyLog
		var logHabits string
		if err := rows.Scan(&log.ID, &log.Date, &log.XP, &logHabits); err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		if err := json.Unmarshal([]byte(logHabits), &log.Habits); err != nil {
			return nil, fmt.Errorf("failed to parse daily log %s: %w", log.Date, err)
		}
		state.DailyLogs[log.Date] = log
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily logs: %w", err)
	}

	normalize(state)
	return state, nil
}

// SaveState writes the full snapshot in one transaction: the progression row
// is upserted and the daily log table is replaced wholesale, so the database
// always matches the in-memory aggregate exactly.
func (s *SQLiteStore) SaveState(state *models.State) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	habitsJSON, err := json.Marshal(state.DailyHabits)
	if err != nil {
		return fmt.Errorf("failed to serialize daily habits: %w", err)
	}
	weeklyJSON, err := json.Marshal(state.WeeklyStats)
	if err != nil {
		return fmt.Errorf("failed to serialize weekly stats: %w", err)
	}
	badges := state.UnlockedBadges
	if badges == nil {
		badges = []string{}
	}
	badgesJSON, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to serialize badges: %w", err)
	}

	var weight, waist any
	if state.Weight != nil {
		weight = *state.Weight
	}
	if state.Waist != nil {
		waist = *state.Waist
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO progression (id, level, xp, xp_needed, total_xp, streak,
			overall_streak, habits_completed, daily_habits, weekly_stats,
			weight, waist, energy, unlocked_badges, current_day)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			level = excluded.level,
			xp = excluded.xp,
			xp_needed = excluded.xp_needed,
			total_xp = excluded.total_xp,
			streak = excluded.streak,
			overall_streak = excluded.overall_streak,
			habits_completed = excluded.habits_completed,
			daily_habits = excluded.daily_habits,
			weekly_stats = excluded.weekly_stats,
			weight = excluded.weight,
			waist = excluded.waist,
			energy = excluded.energy,
			unlocked_badges = excluded.unlocked_badges,
			current_day = excluded.current_day`,
		state.Level, state.XP, state.XPNeeded, state.TotalXP, state.Streak,
		state.OverallStreak, state.HabitsCompleted, string(habitsJSON),
		string(weeklyJSON), weight, waist, state.Energy, string(badgesJSON),
		state.CurrentDate)
	if err != nil {
		return fmt.Errorf("failed to write progression: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM daily_logs`); err != nil {
		return fmt.Errorf("failed to clear daily logs: %w", err)
	}
	for _, log := range state.DailyLogs {
		logHabits, err := json.Marshal(log.Habits)
		if err != nil {
			return fmt.Errorf("failed to serialize daily log %s: %w", log.Date, err)
		}
		if _, err := tx.Exec(`INSERT INTO daily_logs (id, date, xp, habits) VALUES (?, ?, ?, ?)`,
			log.ID, log.Date, log.XP, string(logHabits)); err != nil {
			return fmt.Errorf("failed to write daily log %s: %w", log.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
