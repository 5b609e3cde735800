package progress

import (
	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/models"
)

// RolloverResult describes what a load-time day check did.
type RolloverResult struct {
	NewDay      bool
	Qualified   bool // yesterday cleared the 80% bar
	StreakReset bool
}

// Rollover runs the once-per-load day check. When the persisted date is
// behind the clock it settles yesterday (qualify or reset the streak),
// reinstalls fresh habit entries, zeroes the weekly cache, and stamps today.
// There is no background timer; a session that straddles midnight rolls over
// on its next load.
func (t *Tracker) Rollover() RolloverResult {
	s := t.State
	today := t.Today()
	if s.CurrentDate == today {
		return RolloverResult{}
	}

	res := RolloverResult{NewDay: true}

	// Yesterday qualifies only above a strict 80% of the non-water habits.
	// Meeting the bar exactly neither extends the overall streak nor resets
	// the daily one.
	done := t.completedToday()
	total := len(s.DailyHabits) - 1
	if float64(done) > float64(total)*0.8 {
		s.OverallStreak++
		res.Qualified = true
	} else if float64(done) != float64(total)*0.8 {
		s.Streak = 0
		res.StreakReset = true
	}

	s.DailyHabits = catalog.InitialEntries()
	s.WeeklyStats = models.WeeklyStats{}
	s.CurrentDate = today
	return res
}

// ResetWeek is a user-invoked clear of the current week: weekly cache,
// check-in fields, today's habit entries, and any daily logs dated within the
// current Sunday–Saturday window. Lifetime XP, level, and badges survive.
func (t *Tracker) ResetWeek() {
	s := t.State

	s.WeeklyStats = models.WeeklyStats{}
	s.Weight = nil
	s.Waist = nil
	s.Energy = catalog.DefaultEnergy
	s.DailyHabits = catalog.InitialEntries()

	now := t.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	startStr := weekStart.Format(dateLayout)
	endStr := weekEnd.Format(dateLayout)

	for date := range s.DailyLogs {
		if date >= startStr && date <= endStr {
			delete(s.DailyLogs, date)
		}
	}
}
