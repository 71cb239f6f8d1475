package repo

import (
	"github.com/Skotchmaster/qa_api/internal/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func (r UserRepo) List() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r UserRepo) Get(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName returns the first user with that name; names are not unique.
func (r UserRepo) FindByName(name string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("name = ?", name).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r UserRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r UserRepo) Save(user *models.User) error {
	return r.db.Save(user).Error
}

func (r UserRepo) Delete(user *models.User) error {
	res := r.db.Delete(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
