package services

import (
	"math"
	"time"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

// Time ranges accepted by the analytics endpoints.
const (
	RangeAll    = "all"
	Range7Days  = "7days"
	Range30Days = "30days"
	RangeMonth  = "month"
)

// insightsWindowDays is the lookback for the headline completion rate.
const insightsWindowDays = 30

type StatsService struct {
	clock    Clock
	location *time.Location
}

func NewStatsService(clock Clock, location *time.Location) *StatsService {
	return &StatsService{clock: clock, location: location}
}

type WeeklyPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DashboardSummary struct {
	Date            string        `json:"date"`
	Quote           string        `json:"quote"`
	HabitsDoneToday int           `json:"habitsDoneToday"`
	HabitsTotal     int           `json:"habitsTotal"`
	ProgressPercent int           `json:"progressPercent"`
	PendingTodos    int           `json:"pendingTodos"`
	BrokenStreaks   int           `json:"brokenStreaks"`
	TodaySpend      float64       `json:"todaySpend"`
	JournalEntries  int           `json:"journalEntries"`
	Weekly          []WeeklyPoint `json:"weekly"`
}

// BuildDashboard assembles the landing-page numbers from the session's
// working set. Everything is derived; nothing here mutates state.
func (service *StatsService) BuildDashboard(session *syncer.Session) DashboardSummary {
	set := session.Snapshot()
	now := service.clock.Now().In(service.location)
	today := FormatDay(now)

	doneToday := 0
	broken := 0
	for _, habit := range set.Habits {
		if habit.CompletedOn(today) {
			doneToday++
		}
		if count := len(habit.CompletedDates); count > 0 {
			last := habit.CompletedDates[count-1]
			if DiffDays(last, today) > 2 {
				broken++
			}
		}
	}

	progress := 0
	if len(set.Habits) > 0 {
		progress = roundPercent(doneToday, len(set.Habits))
	}

	pending := 0
	for _, todo := range set.Todos {
		if !todo.Completed {
			pending++
		}
	}

	spend := 0.0
	for _, expense := range set.Expenses {
		if expense.Date == today {
			spend += expense.Amount
		}
	}

	weekly := make([]WeeklyPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		dayStr := FormatDay(day)
		count := 0
		for _, habit := range set.Habits {
			if habit.CompletedOn(dayStr) {
				count++
			}
		}
		weekly = append(weekly, WeeklyPoint{Day: day.Format("Mon"), Count: count})
	}

	return DashboardSummary{
		Date:            today,
		Quote:           QuoteOfTheDay(now),
		HabitsDoneToday: doneToday,
		HabitsTotal:     len(set.Habits),
		ProgressPercent: progress,
		PendingTodos:    pending,
		BrokenStreaks:   broken,
		TodaySpend:      spend,
		JournalEntries:  len(set.Journal),
		Weekly:          weekly,
	}
}

type CompletionPoint struct {
	Day        string `json:"day"`
	Completion int    `json:"completion"`
}

type DayOfWeekPoint struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
}

type InsightsReport struct {
	AverageStreak  int               `json:"averageStreak"`
	CompletionRate int               `json:"completionRate"`
	ActiveHabits   int               `json:"activeHabits"`
	SkippedCount   int               `json:"skippedCount"`
	WeekSeries     []CompletionPoint `json:"weekSeries"`
	DayOfWeek      []DayOfWeekPoint  `json:"dayOfWeek"`
}

// BuildInsights computes the 30-day completion rate and the 7-day
// completion series. A habit counts toward a day only if that day falls
// inside its [StartDate, EndDate] range.
func (service *StatsService) BuildInsights(session *syncer.Session) InsightsReport {
	habits := session.Habits()
	now := service.clock.Now().In(service.location)

	totalStreaks := 0
	for _, habit := range habits {
		totalStreaks += habit.Streaks
	}
	averageStreak := 0
	if len(habits) > 0 {
		averageStreak = int(math.Round(float64(totalStreaks) / float64(len(habits))))
	}

	completed, possible := 0, 0
	for offset := 0; offset < insightsWindowDays; offset++ {
		day := FormatDay(now.AddDate(0, 0, -offset))
		for _, habit := range habits {
			if !DayWithinRange(day, habit.StartDate, habit.EndDate) {
				continue
			}
			possible++
			if habit.CompletedOn(day) {
				completed++
			}
		}
	}
	completionRate := 0
	if possible > 0 {
		completionRate = roundPercent(completed, possible)
	}

	weekSeries := make([]CompletionPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		dayTime := now.AddDate(0, 0, -offset)
		day := FormatDay(dayTime)
		dayCompleted, dayPossible := 0, 0
		for _, habit := range habits {
			if !DayWithinRange(day, habit.StartDate, habit.EndDate) {
				continue
			}
			dayPossible++
			if habit.CompletedOn(day) {
				dayCompleted++
			}
		}
		completion := 0
		if dayPossible > 0 {
			completion = roundPercent(dayCompleted, dayPossible)
		}
		weekSeries = append(weekSeries, CompletionPoint{Day: dayTime.Format("Mon"), Completion: completion})
	}

	dayNames := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	counts := make([]int, 7)
	for _, habit := range habits {
		for _, dateStr := range habit.CompletedDates {
			parsed, err := ParseDay(dateStr)
			if err != nil {
				continue
			}
			counts[int(parsed.Weekday())]++
		}
	}
	dayOfWeek := make([]DayOfWeekPoint, 0, 7)
	for index, name := range dayNames {
		dayOfWeek = append(dayOfWeek, DayOfWeekPoint{Day: name, Completed: counts[index]})
	}

	return InsightsReport{
		AverageStreak:  averageStreak,
		CompletionRate: completionRate,
		ActiveHabits:   len(habits),
		SkippedCount:   possible - completed,
		WeekSeries:     weekSeries,
		DayOfWeek:      dayOfWeek,
	}
}

type StreakPoint struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

type CategoryRate struct {
	Name string `json:"name"`
	Rate int    `json:"rate"`
}

type AnalyticsReport struct {
	Range             string             `json:"range"`
	Streaks           []StreakPoint      `json:"streaks"`
	ExpenseByCategory map[string]float64 `json:"expenseByCategory"`
	MoodCounts        map[string]int     `json:"moodCounts"`
	CategoryRates     []CategoryRate     `json:"categoryRates"`
}

// BuildAnalytics aggregates per-category spending, journal moods and
// habit consistency over the requested time range. An unknown range
// falls back to all time.
func (service *StatsService) BuildAnalytics(session *syncer.Session, timeRange string) AnalyticsReport {
	set := session.Snapshot()
	now := service.clock.Now().In(service.location)

	inRange := service.rangeFilter(timeRange, now)

	expenseByCategory := make(map[string]float64)
	for _, expense := range set.Expenses {
		if inRange(expense.Date) {
			expenseByCategory[expense.Category] += expense.Amount
		}
	}

	moodCounts := make(map[string]int)
	for _, entry := range set.Journal {
		if entry.Mood == "" || !inRange(entry.Date) {
			continue
		}
		moodCounts[entry.Mood]++
	}

	streaks := make([]StreakPoint, 0, len(set.Habits))
	for _, habit := range set.Habits {
		streaks = append(streaks, StreakPoint{Name: habit.Name, Streak: habit.Streaks})
	}

	return AnalyticsReport{
		Range:             timeRange,
		Streaks:           streaks,
		ExpenseByCategory: expenseByCategory,
		MoodCounts:        moodCounts,
		CategoryRates:     service.categoryRates(set.Habits, timeRange, now, inRange),
	}
}

// categoryRates estimates one completion opportunity per habit per day
// in the range, matching how the consistency chart has always read.
func (service *StatsService) categoryRates(habits []models.Habit, timeRange string, now time.Time, inRange func(string) bool) []CategoryRate {
	type tally struct {
		total int
		done  int
	}
	tallies := make(map[string]*tally)
	order := []string{}

	for _, habit := range habits {
		entry, ok := tallies[habit.Category]
		if !ok {
			entry = &tally{}
			tallies[habit.Category] = entry
			order = append(order, habit.Category)
		}

		for _, dateStr := range habit.CompletedDates {
			if inRange(dateStr) {
				entry.done++
			}
		}

		daysInRange := 1
		switch timeRange {
		case Range7Days:
			daysInRange = 7
		case Range30Days:
			daysInRange = 30
		case RangeMonth:
			daysInRange = now.Day()
		default:
			elapsed := int(math.Ceil(now.Sub(habit.CreatedAt).Hours() / 24))
			if elapsed > daysInRange {
				daysInRange = elapsed
			}
		}
		entry.total += daysInRange
	}

	rates := make([]CategoryRate, 0, len(order))
	for _, category := range order {
		entry := tallies[category]
		total := entry.total
		if total < 1 {
			total = 1
		}
		rates = append(rates, CategoryRate{Name: category, Rate: roundPercent(entry.done, total)})
	}
	return rates
}

func (service *StatsService) rangeFilter(timeRange string, now time.Time) func(string) bool {
	var cutoff string
	switch timeRange {
	case Range7Days:
		cutoff = FormatDay(now.AddDate(0, 0, -7))
	case Range30Days:
		cutoff = FormatDay(now.AddDate(0, 0, -30))
	case RangeMonth:
		cutoff = FormatDay(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	default:
		return func(string) bool { return true }
	}
	return func(day string) bool { return day >= cutoff }
}

func roundPercent(part int, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
