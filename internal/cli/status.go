package cli

import (
	"fmt"

	"github.com/julianstephens/levelup/internal/catalog"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}
	s := tracker.State

	tier := tracker.LevelInfo()
	fmt.Printf("Level %d — %s\n", s.Level, tier.Name)
	fmt.Printf("%s %d/%d XP  (lifetime %d)\n", xpBar(s.XP, s.XPNeeded, 24), s.XP, s.XPNeeded, s.TotalXP)
	fmt.Printf("Streak: %d   Overall: %d   Habits completed: %d\n", s.Streak, s.OverallStreak, s.HabitsCompleted)
	fmt.Println()

	fmt.Printf("Today (%s) — %d%% done", s.CurrentDate, tracker.TodayProgress())
	if tracker.Submitted() {
		fmt.Print("  [submitted]")
	}
	fmt.Println()
	for _, id := range catalog.HabitIDs() {
		mark := "·"
		if s.DailyHabits[id].Completed {
			mark = "✓"
		}
		fmt.Printf("  %s %-14s %3d XP\n", mark, id, catalog.XPValue(id))
	}
	water := s.DailyHabits[catalog.WaterHabitID]
	fmt.Printf("  ~ %-14s %.1fL (%d XP)\n", catalog.WaterHabitID, water.Value, water.XP)
	fmt.Println()

	fmt.Printf("This week: %d completed, %d missed, %d%% rate\n",
		s.WeeklyStats.Completed, s.WeeklyStats.Missed, s.WeeklyStats.Rate)
	fmt.Printf("Check-in: weight %s  waist %s  energy %d/5\n",
		formatFloat(s.Weight), formatFloat(s.Waist), s.Energy)
	fmt.Println()
	fmt.Printf("%q\n", catalog.RandomQuote())
	return nil
}
