package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/levelup/internal/models"
	"github.com/julianstephens/levelup/internal/progress"
)

func sampleState() *models.State {
	state := progress.NewState(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	tr := progress.New(state)
	tr.Now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	tr.AwardXP(275)
	if _, err := tr.ToggleHabit("gym", true); err != nil {
		panic(err)
	}
	if err := tr.SetWater(3.5); err != nil {
		panic(err)
	}
	if _, err := tr.Submit(map[string]bool{"gym": true, "sleep": true}, 3.5); err != nil {
		panic(err)
	}
	weight := 81.2
	state.Weight = &weight
	return state
}

func assertRoundTrip(t *testing.T, store Provider) {
	t.Helper()

	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := sampleState()
	if err := store.SaveState(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened := reopen(t, store)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetState()
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}

	if got.Level != want.Level || got.XP != want.XP || got.TotalXP != want.TotalXP ||
		got.Streak != want.Streak || got.CurrentDate != want.CurrentDate ||
		got.HabitsCompleted != want.HabitsCompleted {
		t.Errorf("scalar fields did not round-trip:\nwant %+v\ngot  %+v", want, got)
	}
	if got.Weight == nil || *got.Weight != *want.Weight {
		t.Errorf("weight did not round-trip: %v", got.Weight)
	}
	if len(got.DailyHabits) != len(want.DailyHabits) {
		t.Fatalf("habit entries did not round-trip: want %d, got %d", len(want.DailyHabits), len(got.DailyHabits))
	}
	for id, w := range want.DailyHabits {
		if g := got.DailyHabits[id]; g != w {
			t.Errorf("habit %s did not round-trip: want %+v, got %+v", id, w, g)
		}
	}
	wantLog := want.DailyLogs["2024-01-01"]
	gotLog, ok := got.DailyLogs["2024-01-01"]
	if !ok {
		t.Fatal("daily log missing after round-trip")
	}
	if gotLog.XP != wantLog.XP || gotLog.ID != wantLog.ID || len(gotLog.Habits) != len(wantLog.Habits) {
		t.Errorf("daily log did not round-trip: want %+v, got %+v", wantLog, gotLog)
	}
}

func reopen(t *testing.T, store Provider) Provider {
	t.Helper()
	switch s := store.(type) {
	case *JSONStore:
		return NewJSONStore(s.GetConfigPath())
	case *SQLiteStore:
		return NewSQLiteStore(s.GetConfigPath())
	default:
		t.Fatalf("unknown provider %T", store)
		return nil
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelup.json")
	assertRoundTrip(t, NewJSONStore(path))
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelup.db")
	assertRoundTrip(t, NewSQLiteStore(path))
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "levelup.json"))
	if err := store.Load(); err == nil {
		t.Fatal("expected an error loading uninitialized storage")
	}
}

func TestSQLiteStore_LoadBeforeInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "levelup.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected an error loading uninitialized storage")
	}
}

func TestJSONStore_InitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelup.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Fatal("expected second init to refuse overwriting existing storage")
	}
}

func TestSQLiteStore_InitSeedsDefaultState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelup.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer store.Close()

	state, err := store.GetState()
	if err != nil {
		t.Fatalf("get state failed: %v", err)
	}
	if state.Level != 1 || state.XPNeeded != 100 {
		t.Errorf("unexpected default progression: level=%d xpNeeded=%d", state.Level, state.XPNeeded)
	}
	if len(state.DailyHabits) != 12 {
		t.Errorf("expected a fresh habit set, got %d entries", len(state.DailyHabits))
	}
}
