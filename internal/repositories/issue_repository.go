package repositories

import (
	"gramconnect/internal/models"

	"gorm.io/gorm"
)

type IssueRepository interface {
	List(db *gorm.DB) ([]models.Issue, error)
	ListByUser(db *gorm.DB, userID uint) ([]models.Issue, error)
	Create(db *gorm.DB, issue *models.Issue) error
}

type IssueRepositoryImpl struct{}

func NewIssueRepository() IssueRepository {
	return &IssueRepositoryImpl{}
}

func (r *IssueRepositoryImpl) List(db *gorm.DB) ([]models.Issue, error) {
	var issues []models.Issue
	if err := db.Order("reported_date DESC").Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]models.Issue, error) {
	var issues []models.Issue
	err := db.Where("user_id = ?", userID).Order("reported_date DESC").Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepositoryImpl) Create(db *gorm.DB, issue *models.Issue) error {
	return db.Create(issue).Error
}
