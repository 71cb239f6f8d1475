package repo

import (
	"github.com/Skotchmaster/qa_api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepo struct {
	db *gorm.DB
}

func (r TransactionRepo) List() ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := r.db.Preload("Status").Order("id ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r TransactionRepo) ListByUser(userID uint) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := r.db.Preload("Status").Where("user_id = ?", userID).Order("id ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r TransactionRepo) Get(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Preload("Status").First(&tx, id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// Create inserts the row without touching associations and loads its status.
func (r TransactionRepo) Create(tx *models.Transaction) error {
	if err := r.db.Omit(clause.Associations).Create(tx).Error; err != nil {
		return err
	}
	return r.loadStatus(tx)
}

func (r TransactionRepo) Save(tx *models.Transaction) error {
	if err := r.db.Omit(clause.Associations).Save(tx).Error; err != nil {
		return err
	}
	return r.loadStatus(tx)
}

func (r TransactionRepo) loadStatus(tx *models.Transaction) error {
	var status models.Status
	if err := r.db.First(&status, tx.StatusID).Error; err != nil {
		return err
	}
	tx.Status = status
	return nil
}

func (r TransactionRepo) Delete(tx *models.Transaction) error {
	res := r.db.Delete(tx)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r TransactionRepo) CountByUser(userID uint) (int64, error) {
	return r.countWhere("user_id = ?", userID)
}

func (r TransactionRepo) CountByProduct(productID uint) (int64, error) {
	return r.countWhere("product_id = ?", productID)
}

func (r TransactionRepo) countWhere(query string, args ...any) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
