package progress

import (
	"errors"
	"testing"
)

func TestSubmit_ComputesDailyTotal(t *testing.T) {
	tr := newTestTracker("2024-01-01")

	res, err := tr.Submit(map[string]bool{"gym": true, "no-junk": true, "sleep": false}, 0)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.XP != 35 {
		t.Errorf("expected 35 XP (gym 20 + no-junk 15), got %d", res.XP)
	}
	log, ok := tr.State.DailyLogs["2024-01-01"]
	if !ok {
		t.Fatal("expected a daily log for today")
	}
	if log.XP != 35 {
		t.Errorf("log XP mismatch: %d", log.XP)
	}
	if !log.Habits["gym"].Completed || log.Habits["sleep"].Completed {
		t.Error("log snapshot does not match submitted completions")
	}
	if tr.State.TotalXP != 35 {
		t.Errorf("expected lifetime XP 35, got %d", tr.State.TotalXP)
	}
}

func TestSubmit_SecondCallIsRejectedAndHarmless(t *testing.T) {
	tr := newTestTracker("2024-01-01")

	if _, err := tr.Submit(map[string]bool{"gym": true}, 0); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	after := tr.State.Clone()

	_, err := tr.Submit(map[string]bool{"gym": true, "sleep": true}, 4)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	assertStateEqual(t, after, tr.State)
}

func TestSubmit_WaterGate(t *testing.T) {
	cases := []struct {
		liters float64
		wantXP int
	}{
		{2.9, 0}, // below the gate the whole contribution is dropped
		{3.0, 6},
		{4.0, 8},
		{9.5, 8}, // capped
	}

	for _, tc := range cases {
		tr := newTestTracker("2024-01-01")
		res, err := tr.Submit(nil, tc.liters)
		if err != nil {
			t.Fatalf("submit at %vL failed: %v", tc.liters, err)
		}
		if res.XP != tc.wantXP {
			t.Errorf("%vL: expected %d XP, got %d", tc.liters, tc.wantXP, res.XP)
		}
	}
}

func TestSubmit_FreezesDay(t *testing.T) {
	tr := newTestTracker("2024-01-01")
	if _, err := tr.Submit(map[string]bool{"gym": true}, 0); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := tr.ToggleHabit("sleep", true); !errors.Is(err, ErrDaySubmitted) {
		t.Errorf("expected ErrDaySubmitted on toggle, got %v", err)
	}
	if err := tr.SetWater(2); !errors.Is(err, ErrDaySubmitted) {
		t.Errorf("expected ErrDaySubmitted on water change, got %v", err)
	}
}

func TestSubmit_ThawsAfterRollover(t *testing.T) {
	tr := newTestTracker("2024-01-01")
	if _, err := tr.Submit(map[string]bool{"gym": true}, 0); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	tr.Now = fixedClock("2024-01-02")
	tr.Rollover()

	if _, err := tr.ToggleHabit("gym", true); err != nil {
		t.Errorf("expected toggling to work again on the new day, got %v", err)
	}
	if _, err := tr.Submit(map[string]bool{"gym": true}, 0); err != nil {
		t.Errorf("expected the new day to be submittable, got %v", err)
	}
}

func TestSubmit_LargeDayCascadesLevels(t *testing.T) {
	tr := newTestTracker("2024-01-01")
	all := map[string]bool{
		"wake-up": true, "green-tea": true, "breakfast": true, "fruits-snack": true,
		"lunch": true, "evening-drink": true, "pre-workout": true, "gym": true,
		"dinner": true, "sleep": true, "no-junk": true,
	}

	// A perfect day: 110 habit XP + 8 water XP crosses the first threshold.
	res, err := tr.Submit(all, 4)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.XP != 118 {
		t.Errorf("expected 118 XP, got %d", res.XP)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Errorf("expected a level up to 2, got %+v", res)
	}
	if tr.State.XP != 18 {
		t.Errorf("expected 18 XP carried into level 2, got %d", tr.State.XP)
	}
}
