package models

type Job struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Location    string `json:"location"`
	Contact     string `gorm:"not null" json:"contact"`
	Category    string `json:"category"`
	Eligibility string `json:"eligibility"`
	Salary      string `json:"salary"`
	Deadline    string `json:"deadline"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	PostedDate  string `gorm:"not null" json:"posted_date"`
}
