package repositories

import (
	"gramconnect/internal/models"

	"gorm.io/gorm"
)

// ProductFilter narrows marketplace listings. Filters combine with
// logical AND. Search matches name or description with the store's
// LIKE semantics.
type ProductFilter struct {
	Category string
	Search   string
}

type ProductRepository interface {
	List(db *gorm.DB, filter ProductFilter) ([]models.Product, error)
	ListByUser(db *gorm.DB, userID uint) ([]models.Product, error)
	Create(db *gorm.DB, product *models.Product) error
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) List(db *gorm.DB, filter ProductFilter) ([]models.Product, error) {
	query := db.Order("posted_date DESC")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]models.Product, error) {
	var products []models.Product
	err := db.Where("user_id = ?", userID).Order("posted_date DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}
