package repo

import (
	"strings"

	"github.com/Skotchmaster/qa_api/internal/models"
	"gorm.io/gorm"
)

type ProductRepo struct {
	db *gorm.DB
}

func (r ProductRepo) List() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r ProductRepo) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName returns the first product with that name; names are not unique.
func (r ProductRepo) FindByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ?", name).Order("id ASC").First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r ProductRepo) Price(id uint) (float64, error) {
	var prices []float64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Limit(1).Pluck("price", &prices).Error; err != nil {
		return 0, err
	}
	if len(prices) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return prices[0], nil
}

func (r ProductRepo) CheckStock(id uint, quantity int) (bool, error) {
	product, err := r.Get(id)
	if err != nil {
		return false, err
	}
	return product.Stock >= quantity, nil
}

// DecrementStock takes quantity off the stock only while enough is left and
// reports whether it did.
func (r ProductRepo) DecrementStock(id uint, quantity int) (bool, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r ProductRepo) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r ProductRepo) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// UpdateField sets one column and returns the fresh row.
func (r ProductRepo) UpdateField(id uint, column string, value any) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(id)
}

func (r ProductRepo) Delete(product *models.Product) error {
	res := r.db.Delete(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search is a case-insensitive substring match over name and description.
func (r ProductRepo) Search(q string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	products := []models.Product{}
	if err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r ProductRepo) GetMany(ids []uint) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
