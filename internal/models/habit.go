package models

import "time"

const (
	TypeHabit = "Habit"
	TypeGoal  = "Goal"
)

const (
	CategoryWealth   = "Wealth"
	CategoryHealth   = "Health"
	CategoryPersonal = "Personal"
	CategoryCareer   = "Career"
	CategoryOther    = "Other"
)

// Habit is a recurring or goal-oriented activity tracked for completion
// over a [StartDate, EndDate] range of calendar days.
//
// CompletedDates holds YYYY-MM-DD strings in append order. Streaks and
// MaxStreaks are derived from it by the streak calculator and are never
// set independently.
type Habit struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"userId"`
	Name           string    `gorm:"not null" json:"name"`
	Type           string    `gorm:"not null;default:Habit" json:"type"`
	Category       string    `gorm:"not null;default:Other" json:"category"`
	Why            string    `json:"why,omitempty"`
	Penalty        string    `json:"penalty,omitempty"`
	StartDate      string    `gorm:"not null" json:"startDate"`
	EndDate        string    `gorm:"not null" json:"endDate"`
	Streaks        int       `gorm:"not null;default:0" json:"streaks"`
	MaxStreaks     int       `gorm:"not null;default:0" json:"maxStreaks"`
	CompletedDates []string  `gorm:"serializer:json" json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ValidHabitType(value string) bool {
	return value == TypeHabit || value == TypeGoal
}

func ValidCategory(value string) bool {
	switch value {
	case CategoryWealth, CategoryHealth, CategoryPersonal, CategoryCareer, CategoryOther:
		return true
	}
	return false
}

// CompletedOn reports whether the habit has a recorded completion for the
// given YYYY-MM-DD day.
func (h Habit) CompletedOn(day string) bool {
	for _, completed := range h.CompletedDates {
		if completed == day {
			return true
		}
	}
	return false
}
