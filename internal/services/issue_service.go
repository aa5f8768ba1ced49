package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type IssueService interface {
	List(db *gorm.DB) ([]models.Issue, error)
	Report(db *gorm.DB, userID uint, form *dto.ReportIssueForm, image *string) (*models.Issue, error)
}

type IssueServiceImpl struct {
	issueRepo repositories.IssueRepository
}

func NewIssueService(issueRepo repositories.IssueRepository) IssueService {
	return &IssueServiceImpl{
		issueRepo: issueRepo,
	}
}

func (s *IssueServiceImpl) List(db *gorm.DB) ([]models.Issue, error) {
	issues, err := s.issueRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return issues, nil
}

// Report records a new issue. image is the stored upload filename, or
// nil when no image was provided.
func (s *IssueServiceImpl) Report(db *gorm.DB, userID uint, form *dto.ReportIssueForm, image *string) (*models.Issue, error) {
	issue := &models.Issue{
		Title:        form.Title,
		Description:  form.Description,
		Location:     form.Location,
		Category:     form.Category,
		Image:        image,
		UserID:       userID,
		ReportedDate: models.Now(),
		Status:       models.IssueStatusPending,
	}

	if err := s.issueRepo.Create(db, issue); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return issue, nil
}
