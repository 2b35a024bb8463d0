package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) ListByUser(userID uint) ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *JournalRepository) FindByIDForUser(userID uint, entryID string) (models.JournalEntry, bool, error) {
	var entry models.JournalEntry
	result := repo.database.Where("user_id = ? AND id = ?", userID, entryID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.JournalEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.JournalEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *JournalRepository) Save(entry *models.JournalEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *JournalRepository) DeleteByIDForUser(userID uint, entryID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, entryID).
		Delete(&models.JournalEntry{}).Error
}
