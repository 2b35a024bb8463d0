package db

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"gorm.io/gorm"
)

type ProofRepository struct {
	database *gorm.DB
}

func NewProofRepository(database *gorm.DB) *ProofRepository {
	return &ProofRepository{database: database}
}

func (repo *ProofRepository) ListByUser(userID uint) ([]models.Proof, error) {
	proofs := make([]models.Proof, 0)
	if err := repo.database.Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").Find(&proofs).Error; err != nil {
		return nil, err
	}
	return proofs, nil
}

func (repo *ProofRepository) FindByIDForUser(userID uint, proofID string) (models.Proof, bool, error) {
	var proof models.Proof
	result := repo.database.Where("user_id = ? AND id = ?", userID, proofID).Limit(1).Find(&proof)
	if result.Error != nil {
		return models.Proof{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Proof{}, false, nil
	}
	return proof, true, nil
}

func (repo *ProofRepository) Save(proof *models.Proof) error {
	return repo.database.Save(proof).Error
}

func (repo *ProofRepository) DeleteByIDForUser(userID uint, proofID string) error {
	return repo.database.Where("user_id = ? AND id = ?", userID, proofID).
		Delete(&models.Proof{}).Error
}
