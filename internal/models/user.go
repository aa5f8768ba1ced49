package models

// User is a registered portal member. Images are filenames inside the
// upload directory, not paths.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Fullname     string  `json:"fullname"`
	Village      string  `json:"village"`
	Contact      string  `gorm:"not null" json:"contact"`
	JoinedDate   string  `gorm:"not null" json:"joined_date"`
	ProfileImage *string `json:"profile_image"`
	BannerImage  *string `json:"banner_image"`
}

// DisplayName is what the session and pages show for the user.
func (u *User) DisplayName() string {
	if u.Fullname != "" {
		return u.Fullname
	}
	return u.Username
}
