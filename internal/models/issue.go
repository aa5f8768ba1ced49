package models

type Issue struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"not null" json:"description"`
	Location     string  `gorm:"not null" json:"location"`
	Category     string  `json:"category"`
	Image        *string `json:"image"`
	UserID       uint    `gorm:"not null;index" json:"user_id"`
	ReportedDate string  `gorm:"not null" json:"reported_date"`
	Status       string  `gorm:"not null" json:"status"`
}
