package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/progress"
)

type SubmitCmd struct{}

// Run commits the day using whatever is currently checked. This is the
// one-shot operation: once submitted, habits are frozen until the next day.
func (c *SubmitCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	completions := make(map[string]bool)
	for _, id := range catalog.HabitIDs() {
		completions[id] = tracker.State.DailyHabits[id].Completed
	}
	water := tracker.State.DailyHabits[catalog.WaterHabitID].Value

	res, err := tracker.Submit(completions, water)
	if errors.Is(err, progress.ErrAlreadySubmitted) {
		fmt.Println("Today already submitted ✅")
		return nil
	}
	if err != nil {
		return err
	}
	persist(ctx, tracker)

	fmt.Printf("Today submitted ✅  +%d XP\n", res.XP)
	if res.LeveledUp {
		fmt.Printf("Level up! You are now level %d (%s).\n", res.NewLevel, tracker.LevelInfo().Name)
	}
	for _, id := range res.NewBadges {
		printBadgeUnlock(id)
	}
	return nil
}
