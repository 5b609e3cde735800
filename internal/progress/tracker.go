package progress

import (
	"errors"
	"time"

	"github.com/julianstephens/levelup/internal/catalog"
	"github.com/julianstephens/levelup/internal/models"
)

const dateLayout = "2006-01-02"

var (
	// ErrAlreadySubmitted means a daily log already exists for today. It is
	// informational, not a failure: repeated submits are safe no-ops.
	ErrAlreadySubmitted = errors.New("today already submitted")
	// ErrDaySubmitted means habit inputs are frozen until the next day starts.
	ErrDaySubmitted = errors.New("today's habits are locked after submission")
	// ErrUnknownHabit means the habit id is not in the catalog.
	ErrUnknownHabit = errors.New("unknown habit")
	// ErrImport means an import document was malformed; state is unchanged.
	ErrImport = errors.New("invalid import document")
)

// Tracker applies progression rules to a single owned State. It performs no
// I/O; callers persist the state after each mutating call.
type Tracker struct {
	State *models.State

	// Now supplies the clock for day comparisons. Tests override it.
	Now func() time.Time
}

// New wraps an existing state, typically one just loaded from storage.
func New(state *models.State) *Tracker {
	return &Tracker{State: state, Now: time.Now}
}

// NewState builds the default state for a first run on the given day.
func NewState(now time.Time) *models.State {
	return &models.State{
		Level:          1,
		XPNeeded:       100,
		Energy:         catalog.DefaultEnergy,
		DailyHabits:    catalog.InitialEntries(),
		UnlockedBadges: []string{},
		CurrentDate:    now.Format(dateLayout),
		DailyLogs:      map[string]models.DailyLog{},
	}
}

// Today returns the current calendar date as YYYY-MM-DD.
func (t *Tracker) Today() string {
	return t.Now().Format(dateLayout)
}

// Submitted reports whether today's habits have already been committed.
func (t *Tracker) Submitted() bool {
	_, ok := t.State.DailyLogs[t.Today()]
	return ok
}

// AwardXP adds XP to the running and lifetime totals and resolves any level
// ups. A single large award can cross several levels, so the check loops.
// It returns whether a level up occurred and any badges unlocked by it.
// Amounts must be non-negative; negative inputs are a caller bug.
func (t *Tracker) AwardXP(amount int) (leveledUp bool, newBadges []string) {
	s := t.State
	s.XP += amount
	s.TotalXP += amount

	for s.XP >= s.XPNeeded {
		s.Level++
		s.XP -= s.XPNeeded
		s.XPNeeded = 100 + (s.Level-1)*50
		s.Streak++
		leveledUp = true
		newBadges = append(newBadges, t.evaluateBadges()...)
	}
	return leveledUp, newBadges
}

// RevokeXP subtracts from the running XP, floored at zero, then recalculates
// the level from TotalXP. TotalXP is never decremented, so revoking XP can
// leave the level where it was even though in-level XP dropped.
func (t *Tracker) RevokeXP(amount int) {
	s := t.State
	s.XP -= amount
	if s.XP < 0 {
		s.XP = 0
	}
	t.recalculateLevel()
}

// recalculateLevel rederives level, in-level XP, and the next threshold by
// consuming TotalXP from level 1 upward.
func (t *Tracker) recalculateLevel() {
	s := t.State
	remaining := s.TotalXP
	level := 1
	needed := 100

	for remaining >= needed {
		remaining -= needed
		level++
		needed = 100 + (level-1)*50
	}

	s.Level = level
	s.XP = remaining
	s.XPNeeded = needed
}

// LevelInfo returns the named tier for the current lifetime XP.
func (t *Tracker) LevelInfo() catalog.Tier {
	return catalog.TierFor(t.State.TotalXP)
}

// evaluateBadges unlocks every catalog badge whose predicate holds and that
// is not yet in the unlocked set, returning the newly unlocked ids.
func (t *Tracker) evaluateBadges() []string {
	var unlocked []string
	for _, b := range catalog.Badges() {
		if t.State.HasBadge(b.ID) {
			continue
		}
		if b.Unlocked(t.State) {
			t.State.UnlockBadge(b.ID)
			unlocked = append(unlocked, b.ID)
		}
	}
	return unlocked
}
