package repositories

import (
	"errors"

	"gramconnect/internal/models"

	"gorm.io/gorm"
)

var ErrSchemeNotFound = errors.New("scheme not found")

type SchemeRepository interface {
	List(db *gorm.DB) ([]models.Scheme, error)
	FindByID(db *gorm.DB, id uint) (*models.Scheme, error)
}

type SchemeRepositoryImpl struct{}

func NewSchemeRepository() SchemeRepository {
	return &SchemeRepositoryImpl{}
}

func (r *SchemeRepositoryImpl) List(db *gorm.DB) ([]models.Scheme, error) {
	var schemes []models.Scheme
	if err := db.Order("posted_date DESC").Find(&schemes).Error; err != nil {
		return nil, err
	}
	return schemes, nil
}

func (r *SchemeRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Scheme, error) {
	var scheme models.Scheme
	err := db.First(&scheme, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}
	return &scheme, nil
}
