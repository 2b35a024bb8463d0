package services

import "github.com/rsahoo0530/LifeSync-V2/internal/models"

// NextStreak derives the streak counters a habit will carry after
// recording a completion for day. The reference point is the most
// recently appended completion, not the chronologically latest one.
//
// A gap of one full day between completions keeps the streak alive;
// the habit survives being marked at 23:59 and again at 00:01 the next
// day because only calendar days are compared. Two or more missed days
// reset the streak to 1.
func NextStreak(habit models.Habit, day string) (streaks int, maxStreaks int) {
	last := ""
	if count := len(habit.CompletedDates); count > 0 {
		last = habit.CompletedDates[count-1]
	}

	streaks = 1
	if last != "" && DiffDays(last, day) <= 1 {
		streaks = habit.Streaks + 1
	}

	maxStreaks = habit.MaxStreaks
	if streaks > maxStreaks {
		maxStreaks = streaks
	}
	return streaks, maxStreaks
}
