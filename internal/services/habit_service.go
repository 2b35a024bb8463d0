package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/events"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

var (
	ErrHabitInvalid     = errors.New("habit input invalid")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrInvalidDay       = errors.New("invalid day")
	ErrDayLocked        = errors.New("day locked for marking")
	ErrAlreadyCompleted = errors.New("already completed for that day")
)

type HabitService struct {
	store    docstore.Store
	bus      *events.Bus
	clock    Clock
	location *time.Location
}

func NewHabitService(store docstore.Store, bus *events.Bus, clock Clock, location *time.Location) *HabitService {
	return &HabitService{store: store, bus: bus, clock: clock, location: location}
}

type CreateHabitInput struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	Why       string `json:"why"`
	Penalty   string `json:"penalty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Create validates the input, assigns an ID and writes the habit through
// the store; the session picks it up from the echoed snapshot.
func (service *HabitService) Create(session *syncer.Session, input CreateHabitInput) (models.Habit, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.Habit{}, ErrHabitInvalid
	}
	if input.Type == "" {
		input.Type = models.TypeHabit
	}
	if !models.ValidHabitType(input.Type) {
		return models.Habit{}, ErrHabitInvalid
	}
	if input.Category == "" {
		input.Category = models.CategoryOther
	}
	if !models.ValidCategory(input.Category) {
		return models.Habit{}, ErrHabitInvalid
	}
	if !ValidDay(input.StartDate) || !ValidDay(input.EndDate) {
		return models.Habit{}, ErrInvalidDay
	}
	if input.StartDate > input.EndDate {
		return models.Habit{}, ErrHabitInvalid
	}

	habit := models.Habit{
		ID:             uuid.NewString(),
		UserID:         session.UserID(),
		Name:           input.Name,
		Type:           input.Type,
		Category:       input.Category,
		Why:            strings.TrimSpace(input.Why),
		Penalty:        strings.TrimSpace(input.Penalty),
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Streaks:        0,
		MaxStreaks:     0,
		CompletedDates: []string{},
		CreatedAt:      service.clock.Now(),
	}
	if err := service.store.Write(session.UserID(), docstore.CollectionHabits, habit.ID, habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

type CompletionInput struct {
	Date     string `json:"date"`
	Remark   string `json:"remark"`
	ImageURL string `json:"imageUrl"`
}

// RecordCompletion marks a habit done for a day. The day must parse,
// must not be locked, and must not already carry a completion. Streaks
// are computed against today, matching how the calculator treats a
// retro-marked day as "caught up now" rather than rewriting history.
func (service *HabitService) RecordCompletion(session *syncer.Session, habitID string, input CompletionInput) (models.Habit, error) {
	if !ValidDay(input.Date) {
		return models.Habit{}, ErrInvalidDay
	}
	today := Today(service.clock, service.location)
	if IsDayLocked(input.Date, today) {
		return models.Habit{}, ErrDayLocked
	}

	habit, found := findHabit(session.Habits(), habitID)
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	if habit.CompletedOn(input.Date) {
		return models.Habit{}, ErrAlreadyCompleted
	}

	streaks, maxStreaks := NextStreak(habit, today)
	habit.CompletedDates = append(habit.CompletedDates, input.Date)
	habit.Streaks = streaks
	habit.MaxStreaks = maxStreaks

	userID := session.UserID()
	err := service.store.Update(userID, docstore.CollectionHabits, habitID, map[string]any{
		"completedDates": habit.CompletedDates,
		"streaks":        habit.Streaks,
		"maxStreaks":     habit.MaxStreaks,
	})
	if err != nil {
		return models.Habit{}, err
	}

	proof := models.Proof{
		ID:        uuid.NewString(),
		UserID:    userID,
		HabitID:   habitID,
		Date:      input.Date,
		Remark:    strings.TrimSpace(input.Remark),
		ImageURL:  input.ImageURL,
		Timestamp: service.clock.Now(),
	}
	if err := service.store.Write(userID, docstore.CollectionProofs, proof.ID, proof); err != nil {
		return models.Habit{}, err
	}

	service.bus.Publish(events.Event{
		Kind:    events.KindCompletion,
		UserID:  userID,
		HabitID: habitID,
		Date:    input.Date,
		Message: habit.Name,
	})
	return habit, nil
}

// StatusForDay resolves the aggregate completion status of one calendar
// day against the session's current habits.
func (service *HabitService) StatusForDay(session *syncer.Session, day string) (DayStatus, error) {
	if !ValidDay(day) {
		return "", ErrInvalidDay
	}
	today := Today(service.clock, service.location)
	return ResolveDayStatus(session.Habits(), day, today), nil
}

// MonthStatuses resolves every day of a YYYY-MM month in one pass.
func (service *HabitService) MonthStatuses(session *syncer.Session, month string) (map[string]DayStatus, error) {
	first, err := time.ParseInLocation("2006-01", month, service.location)
	if err != nil {
		return nil, ErrInvalidDay
	}

	habits := session.Habits()
	today := Today(service.clock, service.location)
	statuses := make(map[string]DayStatus)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		formatted := FormatDay(day)
		statuses[formatted] = ResolveDayStatus(habits, formatted, today)
	}
	return statuses, nil
}

func findHabit(habits []models.Habit, habitID string) (models.Habit, bool) {
	for _, habit := range habits {
		if habit.ID == habitID {
			return habit, true
		}
	}
	return models.Habit{}, false
}
