package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/levelup/internal/progress"
)

type LogCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today', or 'week')." default:"week"`
}

var logBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

func (c *LogCmd) Run(ctx *Context) error {
	tracker, err := openTracker(ctx)
	if err != nil {
		return err
	}

	if c.Date == "week" {
		printWeek(tracker)
		return nil
	}

	date := c.Date
	if date == "today" {
		date = tracker.Today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today', or 'week': %w", err)
	}

	log, ok := tracker.State.DailyLogs[date]
	if !ok {
		fmt.Printf("No submission recorded for %s.\n", date)
		return nil
	}

	fmt.Printf("%s — %d XP\n", log.Date, log.XP)
	ids := make([]string, 0, len(log.Habits))
	for id := range log.Habits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		e := log.Habits[id]
		switch {
		case e.Completed:
			fmt.Printf("  ✓ %s\n", id)
		case e.Value > 0:
			fmt.Printf("  ~ %s %.1fL\n", id, e.Value)
		}
	}
	return nil
}

// printWeek draws the current Sunday–Saturday window as an XP bar per day.
func printWeek(tracker *progress.Tracker) {
	now := tracker.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	fmt.Println("This week:")
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		date := day.Format("2006-01-02")

		xp := 0
		if log, ok := tracker.State.DailyLogs[date]; ok {
			xp = log.XP
		}

		// A perfect day is 118 XP; scale bars against that.
		width := xp * 20 / 118
		if width > 20 {
			width = 20
		}
		bar := logBarStyle.Render(strings.Repeat("▇", width))
		fmt.Printf("  %s %s %s %d XP\n", day.Format("Mon"), date, bar, xp)
	}
}
