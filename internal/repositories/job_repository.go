package repositories

import (
	"errors"

	"gramconnect/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	List(db *gorm.DB, category string) ([]models.Job, error)
	ListByUser(db *gorm.DB, userID uint) ([]models.Job, error)
	FindByID(db *gorm.DB, id uint) (*models.Job, error)
	Create(db *gorm.DB, job *models.Job) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

// List returns jobs newest first, optionally filtered by category.
func (r *JobRepositoryImpl) List(db *gorm.DB, category string) ([]models.Job, error) {
	var jobs []models.Job
	query := db.Order("posted_date DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("user_id = ?", userID).Order("posted_date DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}
