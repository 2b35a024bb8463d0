package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// FindByUser returns the user's settings row, falling back to defaults
// when none has been written yet.
func (repo *SettingsRepository) FindByUser(userID uint) (models.Settings, error) {
	var settings models.Settings
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.Settings{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DefaultSettings(userID), nil
	}
	return settings, nil
}

func (repo *SettingsRepository) Save(settings *models.Settings) error {
	return repo.database.Save(settings).Error
}
