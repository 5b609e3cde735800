package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/levelup/internal/catalog"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateStats:
		content = m.viewStats()
	case StateBadges:
		content = m.viewBadges()
	case StateConfirmSubmit, StateConfirmReset:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	sections := []string{m.viewTabs(), content}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render("  "+m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Stats", "Badges"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	s := m.tracker.State
	var b strings.Builder

	header := fmt.Sprintf("%s — %d%% done", s.CurrentDate, m.tracker.TodayProgress())
	if m.tracker.Submitted() {
		header += "  [submitted]"
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for i, id := range catalog.HabitIDs() {
		mark := "·"
		line := fmt.Sprintf("%s %-14s %3d XP", mark, id, catalog.XPValue(id))
		if s.DailyHabits[id].Completed {
			line = doneStyle.Render(fmt.Sprintf("✓ %-14s %3d XP", id, catalog.XPValue(id)))
		}
		b.WriteString(m.cursorPrefix(i) + line + "\n")
	}

	water := s.DailyHabits[catalog.WaterHabitID]
	waterLine := fmt.Sprintf("~ %-14s %.1fL / %.0fL (%d XP)",
		catalog.WaterHabitID, water.Value, catalog.WaterGoalLiters, catalog.WaterXP(water.Value))
	if water.Value >= catalog.WaterGoalLiters {
		waterLine = doneStyle.Render(waterLine)
	}
	b.WriteString(m.cursorPrefix(m.waterRow()) + waterLine + "\n")

	return docStyle.Render(b.String())
}

func (m Model) cursorPrefix(row int) string {
	if m.cursor == row {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m Model) viewStats() string {
	s := m.tracker.State
	tier := m.tracker.LevelInfo()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d — %s", s.Level, tier.Name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %d/%d XP\n", m.xpBar(24), s.XP, s.XPNeeded))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("lifetime %d XP", s.TotalXP)) + "\n\n")
	b.WriteString(fmt.Sprintf("Streak: %d   Overall: %d   Habits completed: %d\n\n",
		s.Streak, s.OverallStreak, s.HabitsCompleted))
	b.WriteString(fmt.Sprintf("This week: %d completed, %d missed, %d%% rate\n",
		s.WeeklyStats.Completed, s.WeeklyStats.Missed, s.WeeklyStats.Rate))
	b.WriteString(fmt.Sprintf("Check-in: weight %s  waist %s  energy %d/5\n",
		formatFloat(s.Weight), formatFloat(s.Waist), s.Energy))

	return docStyle.Render(b.String())
}

func (m Model) viewBadges() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Badges"))
	b.WriteString("\n\n")
	for _, badge := range catalog.Badges() {
		line := fmt.Sprintf("%s %-18s %s", badge.Icon, badge.Name, badge.Desc)
		if m.tracker.State.HasBadge(badge.ID) {
			b.WriteString(doneStyle.Render("✓ "+line) + "\n")
		} else {
			b.WriteString(mutedStyle.Render("  "+line) + "\n")
		}
	}
	return docStyle.Render(b.String())
}

func (m Model) xpBar(width int) string {
	s := m.tracker.State
	filled := 0
	if s.XPNeeded > 0 {
		filled = s.XP * width / s.XPNeeded
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return barStyle.Render(bar)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *v)
}
