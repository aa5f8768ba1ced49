package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type SchemeService interface {
	List(db *gorm.DB) ([]models.Scheme, error)
	Get(db *gorm.DB, id uint) (*models.Scheme, error)
}

type SchemeServiceImpl struct {
	schemeRepo repositories.SchemeRepository
}

func NewSchemeService(schemeRepo repositories.SchemeRepository) SchemeService {
	return &SchemeServiceImpl{
		schemeRepo: schemeRepo,
	}
}

func (s *SchemeServiceImpl) List(db *gorm.DB) ([]models.Scheme, error) {
	schemes, err := s.schemeRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return schemes, nil
}

func (s *SchemeServiceImpl) Get(db *gorm.DB, id uint) (*models.Scheme, error) {
	scheme, err := s.schemeRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchemeNotFound) {
			return nil, apperrors.ErrNotFound(err, "schemes", "Scheme not found!")
		}
		return nil, apperrors.InternalError(err)
	}
	return scheme, nil
}
