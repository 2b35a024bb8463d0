package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type TodoRepository struct {
	database *gorm.DB
}

func NewTodoRepository(database *gorm.DB) *TodoRepository {
	return &TodoRepository{database: database}
}

func (repo *TodoRepository) ListByUser(userID uint) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (repo *TodoRepository) FindByIDForUser(userID uint, todoID string) (models.Todo, bool, error) {
	var todo models.Todo
	result := repo.database.Where("user_id = ? AND id = ?", userID, todoID).Limit(1).Find(&todo)
	if result.Error != nil {
		return models.Todo{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Todo{}, false, nil
	}
	return todo, true, nil
}

func (repo *TodoRepository) Save(todo *models.Todo) error {
	return repo.database.Save(todo).Error
}

func (repo *TodoRepository) DeleteByIDForUser(userID uint, todoID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, todoID).
		Delete(&models.Todo{}).Error
}
