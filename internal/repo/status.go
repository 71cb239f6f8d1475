package repo

import (
	"github.com/Skotchmaster/qa_api/internal/models"
	"gorm.io/gorm"
)

type StatusRepo struct {
	db *gorm.DB
}

func (r StatusRepo) List() ([]models.Status, error) {
	statuses := []models.Status{}
	if err := r.db.Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r StatusRepo) Get(id uint) (*models.Status, error) {
	var status models.Status
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// FindByName is an exact, case-sensitive match.
func (r StatusRepo) FindByName(name string) (*models.Status, error) {
	var status models.Status
	if err := r.db.Where("name = ?", name).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r StatusRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Status{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SeedIfEmpty inserts names only when the table has no rows at all.
func (r StatusRepo) SeedIfEmpty(names []string) (bool, error) {
	count, err := r.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	rows := make([]models.Status, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.Status{Name: name})
	}
	if err := r.db.Create(&rows).Error; err != nil {
		return false, err
	}
	return true, nil
}
