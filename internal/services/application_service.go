package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Apply upserts the application for (userID, jobID). The returned
	// flag reports whether an existing application was replaced.
	Apply(db *gorm.DB, userID, jobID uint, form *dto.ApplyForm) (bool, error)

	// GetForUserAndJob returns the user's application for the job, or
	// nil when none exists.
	GetForUserAndJob(db *gorm.DB, userID, jobID uint) (*models.JobApplication, error)

	ListForUser(db *gorm.DB, userID uint) ([]repositories.ApplicationWithJob, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

func (s *ApplicationServiceImpl) Apply(db *gorm.DB, userID, jobID uint, form *dto.ApplyForm) (bool, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return false, apperrors.ErrNotFound(err, "jobs", "Job not found!")
		}
		return false, apperrors.InternalError(err)
	}

	existing, err := s.GetForUserAndJob(db, userID, jobID)
	if err != nil {
		return false, err
	}

	app := &models.JobApplication{
		JobID:           jobID,
		UserID:          userID,
		Name:            form.Name,
		Phone:           form.Phone,
		Experience:      form.Experience,
		Message:         form.Message,
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}

	// The conflict-driven upsert keeps at most one row per (user, job)
	// even under concurrent submissions; the existing status survives.
	if err := s.applicationRepo.Upsert(db, app); err != nil {
		return false, apperrors.InternalError(err)
	}

	return existing != nil, nil
}

func (s *ApplicationServiceImpl) GetForUserAndJob(db *gorm.DB, userID, jobID uint) (*models.JobApplication, error) {
	app, err := s.applicationRepo.FindByUserAndJob(db, userID, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) ListForUser(db *gorm.DB, userID uint) ([]repositories.ApplicationWithJob, error) {
	apps, err := s.applicationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
