package catalog

import (
	"testing"

	"github.com/julianstephens/levelup/internal/models"
)

func TestXPValue_KnownAndUnknown(t *testing.T) {
	if got := XPValue("gym"); got != 20 {
		t.Errorf("gym should pay 20 XP, got %d", got)
	}
	if got := XPValue("no-junk"); got != 15 {
		t.Errorf("no-junk should pay 15 XP, got %d", got)
	}
	if got := XPValue("does-not-exist"); got != 0 {
		t.Errorf("unknown habits should pay 0 XP, got %d", got)
	}
}

func TestInitialEntries_FreshDay(t *testing.T) {
	entries := InitialEntries()

	if len(entries) != 12 {
		t.Fatalf("expected 11 binary habits plus water, got %d entries", len(entries))
	}
	for _, id := range HabitIDs() {
		e, ok := entries[id]
		if !ok {
			t.Fatalf("missing entry for %s", id)
		}
		if e.Completed {
			t.Errorf("%s should start unchecked", id)
		}
		if e.XP != XPValue(id) {
			t.Errorf("%s reward mismatch: %d vs %d", id, e.XP, XPValue(id))
		}
	}
	if w := entries[WaterHabitID]; w.Value != 0 || w.XP != 0 {
		t.Errorf("water should start at zero, got %+v", w)
	}
}

func TestWaterXP(t *testing.T) {
	cases := []struct {
		liters float64
		want   int
	}{
		{0, 0},
		{0.5, 1},
		{2.9, 5},
		{3.0, 6},
		{4.0, 8},
		{10, 8},
	}
	for _, tc := range cases {
		if got := WaterXP(tc.liters); got != tc.want {
			t.Errorf("WaterXP(%v) = %d, want %d", tc.liters, got, tc.want)
		}
	}
}

func TestTierFor(t *testing.T) {
	if got := TierFor(499).Name; got != "Beginner" {
		t.Errorf("499 XP should still be Beginner, got %s", got)
	}
	if got := TierFor(4000).Name; got != "Beast Mode" {
		t.Errorf("4000 XP should be Beast Mode, got %s", got)
	}
}

func TestBadgePredicates_AreSnapshotPure(t *testing.T) {
	state := &models.State{
		Level:       10,
		Streak:      7,
		DailyHabits: InitialEntries(),
	}
	before := state.Clone()

	for _, b := range Badges() {
		b.Unlocked(state)
	}

	if state.Level != before.Level || state.Streak != before.Streak ||
		len(state.UnlockedBadges) != len(before.UnlockedBadges) {
		t.Error("badge predicates must not mutate the snapshot")
	}
}
