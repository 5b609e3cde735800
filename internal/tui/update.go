package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/progress"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateConfirmSubmit, StateConfirmReset:
			return m.updateConfirm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.notice = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.notice = ""
			return m, nil
		}

		if m.state == StateToday {
			return m.updateToday(msg)
		}
	}

	// Confirmation forms also consume non-key messages (blink, etc).
	switch m.state {
	case StateConfirmSubmit, StateConfirmReset:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m = m.toggleAtCursor()
	case key.Matches(msg, m.keys.WaterUp):
		m = m.adjustWater(0.5)
	case key.Matches(msg, m.keys.WaterDown):
		m = m.adjustWater(-0.5)
	case key.Matches(msg, m.keys.Submit):
		return m.openConfirm(StateConfirmSubmit,
			"Submit today?",
			"Locks in today's habits and water intake. No further changes until tomorrow.")
	case key.Matches(msg, m.keys.Reset):
		return m.openConfirm(StateConfirmReset,
			"Reset this week?",
			"Weekly stats, check-ins, and this week's daily logs will be cleared. Lifetime XP, level, and badges are kept.")
	}
	return m, nil
}

func (m Model) toggleAtCursor() Model {
	if m.cursor == m.waterRow() {
		return m.adjustWater(0.5)
	}

	id := catalog.HabitIDs()[m.cursor]
	completed := m.tracker.State.DailyHabits[id].Completed
	res, err := m.tracker.ToggleHabit(id, !completed)
	if err != nil {
		if errors.Is(err, progress.ErrDaySubmitted) {
			m.notice = "Today already submitted ✅"
		} else {
			m.notice = err.Error()
		}
		return m
	}

	m.notice = m.progressNotice(res.XPDelta, res.LeveledUp, res.NewLevel, res.NewBadges)
	m.persist()
	return m
}

func (m Model) adjustWater(delta float64) Model {
	liters := m.tracker.State.DailyHabits[catalog.WaterHabitID].Value + delta
	if liters < 0 {
		liters = 0
	}
	if err := m.tracker.SetWater(liters); err != nil {
		if errors.Is(err, progress.ErrDaySubmitted) {
			m.notice = "Today already submitted ✅"
		} else {
			m.notice = err.Error()
		}
		return m
	}
	m.notice = ""
	m.persist()
	return m
}

func (m Model) openConfirm(state SessionState, title, desc string) (tea.Model, tea.Cmd) {
	m.confirmed = new(bool)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(desc).
				Value(m.confirmed),
		),
	).WithTheme(huh.ThemeDracula())
	m.state = state
	return m, m.form.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.state = StateToday
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		confirmed := m.confirmed != nil && *m.confirmed
		action := m.state
		m.state = StateToday
		m.form = nil
		if confirmed {
			switch action {
			case StateConfirmSubmit:
				m = m.submitDay()
			case StateConfirmReset:
				m.tracker.ResetWeek()
				m.notice = "Weekly progress reset."
				m.persist()
			}
		}
		return m, cmd
	case huh.StateAborted:
		m.state = StateToday
		m.form = nil
		return m, cmd
	}
	return m, cmd
}

func (m Model) submitDay() Model {
	s := m.tracker.State
	completions := make(map[string]bool, len(catalog.HabitIDs()))
	for _, id := range catalog.HabitIDs() {
		completions[id] = s.DailyHabits[id].Completed
	}
	water := s.DailyHabits[catalog.WaterHabitID].Value

	res, err := m.tracker.Submit(completions, water)
	if err != nil {
		if errors.Is(err, progress.ErrAlreadySubmitted) {
			m.notice = "Today already submitted ✅"
		} else {
			m.notice = err.Error()
		}
		return m
	}

	m.notice = fmt.Sprintf("Today submitted ✅  +%d XP", res.XP)
	if extra := m.progressNotice(0, res.LeveledUp, res.NewLevel, res.NewBadges); extra != "" {
		m.notice += "  " + extra
	}
	m.persist()
	return m
}

// progressNotice condenses a mutation's feedback into a single status line.
func (m Model) progressNotice(xpDelta int, leveledUp bool, newLevel int, newBadges []string) string {
	var parts []string
	if leveledUp {
		parts = append(parts, fmt.Sprintf("⬆ Level %d!", newLevel))
	}
	for _, id := range newBadges {
		for _, b := range catalog.Badges() {
			if b.ID == id {
				parts = append(parts, fmt.Sprintf("%s %s unlocked!", b.Icon, b.Name))
			}
		}
	}
	if len(parts) == 0 && xpDelta > 0 {
		parts = append(parts, fmt.Sprintf("+%d XP", xpDelta))
	}
	return strings.Join(parts, "  ")
}

// persist saves after a mutation. A failing store downgrades to a notice so
// the session keeps running in memory.
func (m *Model) persist() {
	if err := m.save(); err != nil {
		m.notice = "Warning: could not save progress"
	}
}
