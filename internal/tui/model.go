package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/progress"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateBadges
	StateConfirmSubmit
	StateConfirmReset
)

// tabCount covers the cycling tabs; confirmation states sit outside the cycle.
const tabCount = 3

type Model struct {
	tracker   *progress.Tracker
	save      func() error
	state     SessionState
	keys      KeyMap
	help      help.Model
	form      *huh.Form
	confirmed *bool
	cursor    int
	notice    string
	quitting  bool
	width     int
	height    int
}

// NewModel builds the TUI over an already-loaded tracker. save persists the
// tracker's state after each mutation; failures are surfaced as a notice and
// the session keeps running in memory.
func NewModel(tracker *progress.Tracker, save func() error) Model {
	return Model{
		tracker: tracker,
		save:    save,
		state:   StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// rowCount is the number of selectable rows on the Today tab: every binary
// habit plus the water row at the bottom.
func (m Model) rowCount() int {
	return len(catalog.HabitIDs()) + 1
}

func (m Model) waterRow() int {
	return len(catalog.HabitIDs())
}
