package services

import "time"

var quotes = []string{
	"The secret of your future is hidden in your daily routine.",
	"Small steps in the right direction can turn out to be the biggest step of your life.",
	"Don't watch the clock; do what it does. Keep going.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"Your life does not get better by chance, it gets better by change.",
}

// QuoteOfTheDay rotates by day of month so everyone sees the same quote
// all day and a fresh one tomorrow.
func QuoteOfTheDay(now time.Time) string {
	return quotes[now.Day()%len(quotes)]
}
