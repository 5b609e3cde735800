package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type WeekCmd struct {
	Reset WeekResetCmd `cmd:"" help:"Clear the current week's stats, check-ins, and logs."`
}

type WeekResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *WeekResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Reset this week?").
			Description("Weekly stats, check-ins, and this week's daily logs will be cleared. Lifetime XP, level, and badges are kept.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	tracker.ResetWeek()
	persist(ctx, tracker)

	fmt.Println("Weekly progress reset.")
	return nil
}
