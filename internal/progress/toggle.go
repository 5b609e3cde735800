package progress

import (
	"math"

	"github.com/julianstephens/levelup/internal/catalog"
)

// ToggleResult tells the caller what feedback to show for a live toggle.
type ToggleResult struct {
	XPDelta   int
	LeveledUp bool
	NewLevel  int
	NewBadges []string
}

// ToggleHabit flips a binary habit before submission, adjusting XP
// immediately as an optimistic preview. The authoritative total for the day
// is only fixed by Submit.
func (t *Tracker) ToggleHabit(habitID string, completed bool) (ToggleResult, error) {
	if t.Submitted() {
		return ToggleResult{}, ErrDaySubmitted
	}
	if habitID == catalog.WaterHabitID {
		return ToggleResult{}, ErrUnknownHabit
	}
	entry, ok := t.State.DailyHabits[habitID]
	if !ok {
		return ToggleResult{}, ErrUnknownHabit
	}

	var res ToggleResult
	entry.Completed = completed
	t.State.DailyHabits[habitID] = entry

	if completed {
		res.XPDelta = entry.XP
		res.LeveledUp, res.NewBadges = t.AwardXP(entry.XP)
		t.State.HabitsCompleted++
	} else {
		res.XPDelta = -entry.XP
		t.RevokeXP(entry.XP)
		if t.State.HabitsCompleted > 0 {
			t.State.HabitsCompleted--
		}
	}
	res.NewLevel = t.State.Level

	t.applyStreakHeuristic()
	t.refreshWeeklyStats()
	return res, nil
}

// SetWater records the day's water intake and its derived XP. No XP is
// awarded to the totals here; water only pays out at submission, once the
// day's amount is final.
func (t *Tracker) SetWater(liters float64) error {
	if t.Submitted() {
		return ErrDaySubmitted
	}
	if liters < 0 {
		liters = 0
	}
	entry := t.State.DailyHabits[catalog.WaterHabitID]
	entry.Value = liters
	entry.XP = catalog.WaterXP(liters)
	t.State.DailyHabits[catalog.WaterHabitID] = entry

	t.refreshWeeklyStats()
	return nil
}

// completedToday counts entries that are done: checked binary habits, plus
// the water habit once it reaches the daily goal.
func (t *Tracker) completedToday() int {
	n := 0
	for _, e := range t.State.DailyHabits {
		if e.Completed || e.Value >= catalog.WaterGoalLiters {
			n++
		}
	}
	return n
}

// applyStreakHeuristic nudges the streak from the current day's completions:
// at or above 80% the streak grows, below 30% it shrinks, never below zero.
// Both live toggling and submission run this same function. Water at goal
// counts in the tally twice, once as a completed entry and once as the
// explicit goal bonus, while the denominator excludes the water slot.
func (t *Tracker) applyStreakHeuristic() {
	s := t.State
	done := t.completedToday()
	if s.DailyHabits[catalog.WaterHabitID].Value >= catalog.WaterGoalLiters {
		done++
	}
	total := len(s.DailyHabits) - 1

	switch {
	case float64(done) >= float64(total)*0.8:
		s.Streak++
	case float64(done) < float64(total)*0.3:
		if s.Streak > 0 {
			s.Streak--
		}
	}
}

// refreshWeeklyStats recomputes the derived weekly cache from today's
// entries. The rolling week is approximated by the current day.
func (t *Tracker) refreshWeeklyStats() {
	s := t.State
	done := t.completedToday()
	total := len(s.DailyHabits)

	s.WeeklyStats.Completed = done
	s.WeeklyStats.Missed = total - done
	if total > 0 {
		s.WeeklyStats.Rate = int(math.Round(float64(done) / float64(total) * 100))
	} else {
		s.WeeklyStats.Rate = 0
	}
}

// TodayProgress returns the completion percentage across all of today's
// entries, water included in the denominator.
func (t *Tracker) TodayProgress() int {
	total := len(t.State.DailyHabits)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(t.completedToday()) / float64(total) * 100))
}
