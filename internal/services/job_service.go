package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	List(db *gorm.DB, category string) ([]models.Job, error)
	Get(db *gorm.DB, id uint) (*dto.JobDetail, error)
	Create(db *gorm.DB, userID uint, form *dto.NewJobForm) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
	}
}

func (s *JobServiceImpl) List(db *gorm.DB, category string) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(db, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id uint) (*dto.JobDetail, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "jobs", "Job not found!")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobDetail{
		Job:      *job,
		PostedAt: models.ParseStoredTime(job.PostedDate),
	}, nil
}

func (s *JobServiceImpl) Create(db *gorm.DB, userID uint, form *dto.NewJobForm) (*models.Job, error) {
	job := &models.Job{
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		Contact:     form.Contact,
		Category:    form.Category,
		Eligibility: form.Eligibility,
		Salary:      form.Salary,
		Deadline:    form.Deadline,
		UserID:      userID,
		PostedDate:  models.Now(),
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}
