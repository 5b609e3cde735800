package catalog

import "math/rand"

var quotes = []string{
	"Success is the sum of small efforts repeated day in and day out.",
	"Your body can do it—it's your mind you need to convince.",
	"Progress, not perfection.",
	"Every workout you skip is a victory you give away to your excuses.",
	"The pain you feel today will be the strength you feel tomorrow.",
	"Discipline is choosing between what you want now and what you want most.",
	"Your only bad workout is the one you didn't do.",
	"Don't wish for it, work for it.",
	"The difference between ordinary and extraordinary is that little extra.",
	"Your future self will thank you for what you do today.",
}

// RandomQuote picks a motivational quote for the dashboard.
func RandomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}
