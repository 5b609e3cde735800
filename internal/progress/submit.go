package progress

import (
	"github.com/google/uuid"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/models"
)

// SubmitResult reports the outcome of committing a day.
type SubmitResult struct {
	Date      string
	XP        int
	LeveledUp bool
	NewLevel  int
	NewBadges []string
}

// Submit commits the day once: it totals XP from the given completions and
// water amount, writes the immutable daily log, feeds the total into the
// level arithmetic, and reruns the streak heuristic. A second call for the
// same date returns ErrAlreadySubmitted and changes nothing.
func (t *Tracker) Submit(completions map[string]bool, waterLiters float64) (SubmitResult, error) {
	s := t.State
	today := t.Today()
	if _, ok := s.DailyLogs[today]; ok {
		return SubmitResult{}, ErrAlreadySubmitted
	}

	total := 0
	for habitID, done := range completions {
		if !done || habitID == catalog.WaterHabitID {
			continue
		}
		entry, ok := s.DailyHabits[habitID]
		if !ok {
			continue
		}
		entry.Completed = true
		s.DailyHabits[habitID] = entry
		total += catalog.XPValue(habitID)
	}

	// Water pays out all-or-nothing at the 3L gate. Below it the day's
	// amount earns no XP even though the live preview showed a derived value.
	if waterLiters >= catalog.WaterGoalLiters {
		entry := s.DailyHabits[catalog.WaterHabitID]
		entry.Value = waterLiters
		entry.XP = catalog.WaterXP(waterLiters)
		s.DailyHabits[catalog.WaterHabitID] = entry
		total += entry.XP
	}

	s.DailyLogs[today] = models.DailyLog{
		ID:     uuid.New().String(),
		Date:   today,
		XP:     total,
		Habits: models.CloneEntries(s.DailyHabits),
	}

	res := SubmitResult{Date: today, XP: total}
	if total > 0 {
		res.LeveledUp, res.NewBadges = t.AwardXP(total)
	}
	res.NewLevel = s.Level

	t.applyStreakHeuristic()
	t.refreshWeeklyStats()
	return res, nil
}
