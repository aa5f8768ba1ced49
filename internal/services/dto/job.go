package dto

import (
	"time"

	"gramconnect/internal/models"
)

type NewJobForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Location    string `form:"location"`
	Contact     string `form:"contact" validate:"required"`
	Category    string `form:"category"`
	Eligibility string `form:"eligibility"`
	Salary      string `form:"salary"`
	Deadline    string `form:"deadline"`
}

// JobDetail is a job with its stored posted date parsed for display.
// PostedAt falls back to the current time when the stored value is
// malformed.
type JobDetail struct {
	models.Job
	PostedAt time.Time `json:"posted_at"`
}
