package catalog

import "github.com/julianstephens/levelup/internal/models"

// Badge is a one-way unlockable achievement. Unlocked is a pure predicate over
// a state snapshot; it never mutates anything.
type Badge struct {
	ID       string
	Name     string
	Desc     string
	Icon     string
	Unlocked func(*models.State) bool
}

// Several weekly badge conditions are evaluated from the current day's state
// only: a single gym completion stands in for "5 gym days this week". Exports
// from earlier versions rely on these exact predicates.
var badges = []Badge{
	{
		ID: "7day_streak", Name: "7-Day Streak", Desc: "Complete 7 days in a row", Icon: "🔥",
		Unlocked: func(s *models.State) bool { return s.Streak >= 7 },
	},
	{
		ID: "first_gym_week", Name: "First Gym Week", Desc: "Complete gym workout 5 days in one week", Icon: "💪",
		Unlocked: func(s *models.State) bool { return s.DailyHabits["gym"].Completed },
	},
	{
		ID: "no_junk_week", Name: "No Junk Week", Desc: "Avoid junk food for 7 days straight", Icon: "🚫",
		Unlocked: func(s *models.State) bool { return s.DailyHabits["no-junk"].Completed && s.Streak >= 7 },
	},
	{
		ID: "hydration_master", Name: "Hydration Master", Desc: "Drink 3L+ water for 5 days in a week", Icon: "💧",
		Unlocked: func(s *models.State) bool { return s.DailyHabits[WaterHabitID].Value >= WaterGoalLiters },
	},
	{
		ID: "early_bird", Name: "Early Bird", Desc: "Wake up on time for 10 days", Icon: "🌅",
		Unlocked: func(s *models.State) bool { return s.DailyHabits["wake-up"].Completed && s.Streak >= 10 },
	},
	{
		ID: "discipline_pro", Name: "Discipline Pro", Desc: "Reach Level 10", Icon: "🏆",
		Unlocked: func(s *models.State) bool { return s.Level >= 10 },
	},
	{
		ID: "beast_mode", Name: "Beast Mode", Desc: "Reach Level 21", Icon: "⚡",
		Unlocked: func(s *models.State) bool { return s.Level >= 21 },
	},
}

// Badges returns the badge catalog in display order.
func Badges() []Badge {
	return append([]Badge(nil), badges...)
}
