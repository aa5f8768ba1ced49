package models

// Scheme is a government scheme listing. Schemes are not owned by a
// user; sample rows are seeded on first initialization.
type Scheme struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Eligibility string `json:"eligibility"`
	HowToApply  string `json:"how_to_apply"`
	Deadline    string `json:"deadline"`
	Agency      string `json:"agency"`
	Contact     string `json:"contact"`
	Website     string `json:"website"`
	PostedDate  string `gorm:"not null" json:"posted_date"`
}
