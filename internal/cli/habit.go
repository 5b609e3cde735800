package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/progress"
)

type HabitCmd struct {
	Check   HabitCheckCmd   `cmd:"" help:"Mark a habit done for today."`
	Uncheck HabitUncheckCmd `cmd:"" help:"Unmark a habit for today."`
	List    HabitListCmd    `cmd:"" help:"List the habit catalog."`
}

type HabitCheckCmd struct {
	Name string `arg:"" help:"Habit id (see 'levelup habit list')."`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	return toggle(ctx, c.Name, true)
}

type HabitUncheckCmd struct {
	Name string `arg:"" help:"Habit id (see 'levelup habit list')."`
}

func (c *HabitUncheckCmd) Run(ctx *Context) error {
	return toggle(ctx, c.Name, false)
}

func toggle(ctx *Context, name string, completed bool) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	res, err := tracker.ToggleHabit(name, completed)
	if errors.Is(err, progress.ErrDaySubmitted) {
		fmt.Println("Today is already submitted; habits unlock at the next day.")
		return nil
	}
	if errors.Is(err, progress.ErrUnknownHabit) {
		return fmt.Errorf("unknown habit %q, see 'levelup habit list'", name)
	}
	if err != nil {
		return err
	}
	persist(ctx, tracker)

	fmt.Printf("%s: %+d XP\n", name, res.XPDelta)
	if res.LeveledUp {
		fmt.Printf("Level up! You are now level %d (%s).\n", res.NewLevel, tracker.LevelInfo().Name)
	}
	for _, id := range res.NewBadges {
		printBadgeUnlock(id)
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	for _, id := range catalog.HabitIDs() {
		mark := " "
		if tracker.State.DailyHabits[id].Completed {
			mark = "✓"
		}
		fmt.Printf("[%s] %-14s %3d XP\n", mark, id, catalog.XPValue(id))
	}
	water := tracker.State.DailyHabits[catalog.WaterHabitID]
	fmt.Printf("    %-14s %.1fL, %d XP at 3L+ (max %d)\n",
		catalog.WaterHabitID, water.Value, water.XP, catalog.WaterMaxXP)
	return nil
}

func printBadgeUnlock(id string) {
	for _, b := range catalog.Badges() {
		if b.ID == id {
			fmt.Printf("Badge unlocked: %s %s — %s\n", b.Icon, b.Name, b.Desc)
			return
		}
	}
}
