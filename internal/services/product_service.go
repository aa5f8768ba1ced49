package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type ProductService interface {
	List(db *gorm.DB, filter repositories.ProductFilter) ([]models.Product, error)
	Create(db *gorm.DB, userID uint, form *dto.NewProductForm, image *string) (*models.Product, error)
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
	}
}

func (s *ProductServiceImpl) List(db *gorm.DB, filter repositories.ProductFilter) ([]models.Product, error) {
	products, err := s.productRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) Create(db *gorm.DB, userID uint, form *dto.NewProductForm, image *string) (*models.Product, error) {
	product := &models.Product{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Location:    form.Location,
		Contact:     form.Contact,
		Category:    form.Category,
		Image:       image,
		UserID:      userID,
		PostedDate:  models.Now(),
	}

	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}
