package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	database *gorm.DB
}

func NewExpenseRepository(database *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{database: database}
}

func (repo *ExpenseRepository) ListByUser(userID uint) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *ExpenseRepository) FindByIDForUser(userID uint, expenseID string) (models.Expense, bool, error) {
	var expense models.Expense
	result := repo.database.Where("user_id = ? AND id = ?", userID, expenseID).Limit(1).Find(&expense)
	if result.Error != nil {
		return models.Expense{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Expense{}, false, nil
	}
	return expense, true, nil
}

func (repo *ExpenseRepository) Save(expense *models.Expense) error {
	return repo.database.Save(expense).Error
}

func (repo *ExpenseRepository) DeleteByIDForUser(userID uint, expenseID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, expenseID).
		Delete(&models.Expense{}).Error
}
