package services

import "time"

// DayLayout is the calendar-day wire format used everywhere a date
// identifies a day rather than an instant.
const DayLayout = "2006-01-02"

func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayLayout, value)
}

func ValidDay(value string) bool {
	_, err := ParseDay(value)
	return err == nil
}

func FormatDay(value time.Time) string {
	return value.Format(DayLayout)
}

// Today returns the current calendar day at the given location.
func Today(clock Clock, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return clock.Now().In(location).Format(DayLayout)
}

// DiffDays returns the number of calendar days from one day to another
// (positive when to is after from). Both arguments must be valid
// DayLayout strings; anything else counts as zero days apart.
func DiffDays(from string, to string) int {
	fromDay, err := ParseDay(from)
	if err != nil {
		return 0
	}
	toDay, err := ParseDay(to)
	if err != nil {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// DayWithinRange reports whether day falls inside [start, end], both
// ends inclusive.
func DayWithinRange(day string, start string, end string) bool {
	return day >= start && day <= end
}
