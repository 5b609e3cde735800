package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/levelup/internal/logger"
	"github.com/julianstephens/levelup/internal/progress"
	"github.com/julianstephens/levelup/internal/storage"
)

// Context carries the shared dependencies into every command.
type Context struct {
	Store storage.Provider
}

// openTracker loads storage, wraps the state, and settles any pending day
// rollover before the command runs. The rollover check happens once per
// load, never on a timer.
func openTracker(ctx *Context) (*progress.Tracker, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	state, err := ctx.Store.GetState()
	if err != nil {
		return nil, err
	}

	tracker := progress.New(state)
	if res := tracker.Rollover(); res.NewDay {
		logger.Info("rolled over to a new day",
			"date", tracker.Today(),
			"qualified", res.Qualified,
			"streakReset", res.StreakReset)
		persist(ctx, tracker)
	}
	return tracker, nil
}

// persist writes the full snapshot back. A storage failure is advisory: the
// session keeps its in-memory state and the next mutation retries the save.
func persist(ctx *Context, tracker *progress.Tracker) {
	if err := ctx.Store.SaveState(tracker.State); err != nil {
		logger.Error("failed to persist state, continuing in memory", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not save progress: %v\n", err)
	}
}

// xpBar renders a fixed-width progress bar for the current level.
func xpBar(xp, needed, width int) string {
	if needed <= 0 {
		needed = 1
	}
	filled := xp * width / needed
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func formatFloat(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *v)
}
