package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/progress"
)

type WaterCmd struct {
	Liters float64 `arg:"" help:"Total water drunk today, in liters."`
}

func (c *WaterCmd) Run(ctx *Context) error {
	if c.Liters < 0 {
		return fmt.Errorf("water amount cannot be negative")
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	if err := tracker.SetWater(c.Liters); err != nil {
		if errors.Is(err, progress.ErrDaySubmitted) {
			fmt.Println("Today is already submitted; water unlocks at the next day.")
			return nil
		}
		return err
	}
	persist(ctx, tracker)

	entry := tracker.State.DailyHabits[catalog.WaterHabitID]
	fmt.Printf("Water: %.1fL", entry.Value)
	if entry.Value >= catalog.WaterGoalLiters {
		fmt.Printf(" — goal reached, worth %d XP at submission\n", entry.XP)
	} else {
		fmt.Printf(" — reach %.0fL to earn XP at submission\n", catalog.WaterGoalLiters)
	}
	return nil
}
