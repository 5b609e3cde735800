package models

// DailyHabitEntry is one day's record for a single habit. Binary habits use
// Completed and a fixed XP reward; the water habit uses Value (liters) with XP
// derived from it.
type DailyHabitEntry struct {
	Completed bool    `json:"completed"`
	Value     float64 `json:"value,omitempty"`
	XP        int     `json:"xp"`
}

// WeeklyStats is a derived cache recomputed from the current day's habits on
// every mutation. It is never authoritative.
type WeeklyStats struct {
	Completed int `json:"completed"`
	Missed    int `json:"missed"`
	Rate      int `json:"rate"` // percentage, rounded
}

// DailyLog is the immutable record of one committed day. At most one exists
// per date; its presence for today is the signal that the day was submitted.
type DailyLog struct {
	ID     string                     `json:"id"`
	Date   string                     `json:"date"` // YYYY-MM-DD
	XP     int                        `json:"xp"`
	Habits map[string]DailyHabitEntry `json:"habits"`
}

// State is the root progression aggregate. A single instance exists per user
// and is persisted wholesale after every mutation.
type State struct {
	Level           int                        `json:"level"`
	XP              int                        `json:"xp"`
	XPNeeded        int                        `json:"xp_needed"`
	TotalXP         int                        `json:"total_xp"`
	Streak          int                        `json:"streak"`
	OverallStreak   int                        `json:"overall_streak"`
	HabitsCompleted int                        `json:"habits_completed"`
	DailyHabits     map[string]DailyHabitEntry `json:"daily_habits"`
	WeeklyStats     WeeklyStats                `json:"weekly_stats"`
	Weight          *float64                   `json:"weight,omitempty"`
	Waist           *float64                   `json:"waist,omitempty"`
	Energy          int                        `json:"energy"`
	UnlockedBadges  []string                   `json:"unlocked_badges"`
	CurrentDate     string                     `json:"current_date"` // YYYY-MM-DD
	DailyLogs       map[string]DailyLog        `json:"daily_logs"`
}

// HasBadge reports whether the badge id has been unlocked.
func (s *State) HasBadge(id string) bool {
	for _, b := range s.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// UnlockBadge appends the badge id if not already present. Unlocks are
// one-way; nothing removes an id from the set.
func (s *State) UnlockBadge(id string) bool {
	if s.HasBadge(id) {
		return false
	}
	s.UnlockedBadges = append(s.UnlockedBadges, id)
	return true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := *s
	out.DailyHabits = CloneEntries(s.DailyHabits)
	out.UnlockedBadges = append([]string(nil), s.UnlockedBadges...)
	if s.Weight != nil {
		w := *s.Weight
		out.Weight = &w
	}
	if s.Waist != nil {
		w := *s.Waist
		out.Waist = &w
	}
	out.DailyLogs = make(map[string]DailyLog, len(s.DailyLogs))
	for date, log := range s.DailyLogs {
		log.Habits = CloneEntries(log.Habits)
		out.DailyLogs[date] = log
	}
	return &out
}

// CloneEntries copies a habit entry map.
func CloneEntries(entries map[string]DailyHabitEntry) map[string]DailyHabitEntry {
	out := make(map[string]DailyHabitEntry, len(entries))
	for id, e := range entries {
		out[id] = e
	}
	return out
}
