package models

// JobApplication records a user applying to a job. The composite
// unique index backs the at-most-one-application-per-(user, job)
// invariant; resubmission is an upsert over it.
type JobApplication struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	JobID           uint   `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	Name            string `gorm:"not null" json:"name"`
	Phone           string `gorm:"not null" json:"phone"`
	Experience      string `json:"experience"`
	Message         string `json:"message"`
	ApplicationDate string `gorm:"not null" json:"application_date"`
	Status          string `gorm:"not null" json:"status"`
}

// TableName keeps the historical table name.
func (JobApplication) TableName() string {
	return "job_applications"
}
