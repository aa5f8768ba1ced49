package models

// Product is a marketplace listing. Price is free text, exactly as
// sellers type it.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       string  `gorm:"not null" json:"price"`
	Location    string  `json:"location"`
	Contact     string  `gorm:"not null" json:"contact"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	PostedDate  string  `gorm:"not null" json:"posted_date"`
}
