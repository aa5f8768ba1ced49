package repositories

import (
	"errors"

	"gramconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationWithJob is an application row joined with the fields of
// its job that listings display.
type ApplicationWithJob struct {
	models.JobApplication
	JobTitle    string `json:"job_title"`
	JobCategory string `json:"job_category"`
	JobLocation string `json:"job_location"`
	JobDeadline string `json:"job_deadline"`
}

type ApplicationRepository interface {
	FindByUserAndJob(db *gorm.DB, userID, jobID uint) (*models.JobApplication, error)
	Upsert(db *gorm.DB, app *models.JobApplication) error
	ListByUser(db *gorm.DB, userID uint) ([]ApplicationWithJob, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(db *gorm.DB, userID, jobID uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// Upsert inserts the application, or replaces the mutable fields of an
// existing one for the same (user, job) pair. The conflict clause over
// the composite unique index makes the resubmission atomic; status is
// preserved on update.
func (r *ApplicationRepositoryImpl) Upsert(db *gorm.DB, app *models.JobApplication) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "experience", "message", "application_date",
		}),
	}).Create(app).Error
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID uint) ([]ApplicationWithJob, error) {
	var rows []ApplicationWithJob
	err := db.Table("job_applications").
		Select("job_applications.*, jobs.title AS job_title, jobs.category AS job_category, jobs.location AS job_location, jobs.deadline AS job_deadline").
		Joins("JOIN jobs ON job_applications.job_id = jobs.id").
		Where("job_applications.user_id = ?", userID).
		Order("job_applications.application_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
