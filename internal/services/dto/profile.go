package dto

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
)

type EditProfileForm struct {
	Fullname string `form:"fullname"`
	Village  string `form:"village"`
	Contact  string `form:"contact" validate:"required"`
}

// ProfilePage aggregates everything the profile view shows. Slices are
// never nil; a failed sub-fetch yields an empty slice.
type ProfilePage struct {
	User         *models.User                      `json:"user"`
	Jobs         []models.Job                      `json:"jobs"`
	Issues       []models.Issue                    `json:"issues"`
	Products     []models.Product                  `json:"products"`
	Applications []repositories.ApplicationWithJob `json:"applications"`
}
