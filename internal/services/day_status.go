package services

import "github.com/rsahoo0530/LifeSync-V2/internal/models"

// DayStatus classifies a calendar day's aggregate completion state
// across every habit active on it.
type DayStatus string

const (
	StatusEmpty  DayStatus = "empty"
	StatusFuture DayStatus = "future"
	StatusAll    DayStatus = "all"
	StatusSome   DayStatus = "some"
	StatusNone   DayStatus = "none"
)

// ActiveHabitsOn selects the habits whose [StartDate, EndDate] range
// contains day, both ends inclusive.
func ActiveHabitsOn(habits []models.Habit, day string) []models.Habit {
	active := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		if DayWithinRange(day, habit.StartDate, habit.EndDate) {
			active = append(active, habit)
		}
	}
	return active
}

// ResolveDayStatus computes the aggregate status for day. A day with no
// active habits is empty regardless of when it falls; a future day is
// future regardless of how many completions it somehow carries.
func ResolveDayStatus(habits []models.Habit, day string, today string) DayStatus {
	active := ActiveHabitsOn(habits, day)
	if len(active) == 0 {
		return StatusEmpty
	}
	if day > today {
		return StatusFuture
	}

	completed := 0
	for _, habit := range active {
		if habit.CompletedOn(day) {
			completed++
		}
	}
	switch {
	case completed == len(active):
		return StatusAll
	case completed > 0:
		return StatusSome
	default:
		return StatusNone
	}
}
