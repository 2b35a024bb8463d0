package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(userID uint, habitID string) (models.Habit, bool, error) {
	var habit models.Habit
	result := repo.database.Where("user_id = ? AND id = ?", userID, habitID).Limit(1).Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) DeleteByIDForUser(userID uint, habitID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, habitID).
		Delete(&models.Habit{}).Error
}
