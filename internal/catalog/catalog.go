package catalog

import (
	"math"

	"github.com/julianstephens/levelup/internal/models"
)

// WaterHabitID is the one continuously-valued habit (liters per day).
const WaterHabitID = "water-intake"

const (
	// WaterGoalLiters is the intake at which water counts as a completed habit.
	WaterGoalLiters = 3.0
	// WaterMaxXP caps the XP a day's water intake can earn.
	WaterMaxXP = 8
	// DefaultEnergy is the resting value of the 1-5 energy check-in.
	DefaultEnergy = 3
)

var xpValues = map[string]int{
	"wake-up":       5,
	"green-tea":     5,
	"breakfast":     10,
	"fruits-snack":  5,
	"lunch":         10,
	"evening-drink": 5,
	"pre-workout":   5,
	"gym":           20,
	"dinner":        10,
	"sleep":         10,
	"no-junk":       15,
}

// habitOrder fixes the display order of the binary habits.
var habitOrder = []string{
	"wake-up", "green-tea", "breakfast", "fruits-snack", "lunch",
	"evening-drink", "pre-workout", "gym", "dinner", "sleep", "no-junk",
}

// XPValue returns the fixed XP reward for a binary habit. Unknown ids earn 0.
func XPValue(habitID string) int {
	return xpValues[habitID]
}

// HabitIDs returns the binary habit ids in display order, excluding water.
func HabitIDs() []string {
	return append([]string(nil), habitOrder...)
}

// InitialEntries builds a fresh day: every binary habit unchecked with its
// reward attached, water at zero.
func InitialEntries() map[string]models.DailyHabitEntry {
	entries := make(map[string]models.DailyHabitEntry, len(habitOrder)+1)
	for _, id := range habitOrder {
		entries[id] = models.DailyHabitEntry{XP: xpValues[id]}
	}
	entries[WaterHabitID] = models.DailyHabitEntry{}
	return entries
}

// WaterXP derives XP from liters drunk: 2 XP per liter, capped at WaterMaxXP.
func WaterXP(liters float64) int {
	xp := int(math.Floor(liters * 2))
	if xp > WaterMaxXP {
		xp = WaterMaxXP
	}
	if xp < 0 {
		xp = 0
	}
	return xp
}

// Tier is a named band of lifetime XP.
type Tier struct {
	Level int
	Name  string
	MinXP int
}

var tiers = []Tier{
	{Level: 1, Name: "Beginner", MinXP: 0},
	{Level: 6, Name: "Consistent", MinXP: 500},
	{Level: 11, Name: "Disciplined", MinXP: 1500},
	{Level: 21, Name: "Beast Mode", MinXP: 4000},
}

// TierFor returns the highest tier whose MinXP the lifetime total has reached.
func TierFor(totalXP int) Tier {
	for i := len(tiers) - 1; i >= 0; i-- {
		if totalXP >= tiers[i].MinXP {
			return tiers[i]
		}
	}
	return tiers[0]
}

// Tiers returns the full tier table in ascending order.
func Tiers() []Tier {
	return append([]Tier(nil), tiers...)
}
