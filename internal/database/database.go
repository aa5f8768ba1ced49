package database

import (
	"fmt"

	"gramconnect/internal/logger"
	"gramconnect/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open connects to the single-file SQLite store at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates all tables if absent and seeds the scheme samples.
// It is idempotent: repeated calls leave an initialized store alone.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Scheme{},
		&models.Issue{},
		&models.Product{},
		&models.JobApplication{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return seedSchemes(db)
}

// seedSchemes inserts the sample scheme rows exactly once, guarded by
// a row-count check rather than a migration version.
func seedSchemes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Scheme{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count schemes: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := models.Now()
	samples := []models.Scheme{
		{
			Title:       "Pradhan Mantri Kisan Samman Nidhi",
			Description: "Financial support of Rs. 6000 per year to eligible farmer families.",
			Eligibility: "Small and marginal farmers with combined landholding up to 2 hectares.",
			HowToApply:  "1. Register online at pmkisan.gov.in or visit local agriculture office.\n2. Submit land records and bank details.",
			Deadline:    "Ongoing",
			Agency:      "Ministry of Agriculture & Farmers Welfare",
			Contact:     "1800-115-526",
			Website:     "https://pmkisan.gov.in/",
			PostedDate:  now,
		},
		{
			Title:       "Pradhan Mantri Fasal Bima Yojana",
			Description: "Crop insurance scheme providing financial support to farmers in case of crop failure.",
			Eligibility: "All farmers including sharecroppers and tenant farmers.",
			HowToApply:  "1. Apply through nearest bank branch, CSC center or online.\n2. Submit land records and pay premium amount.",
			Deadline:    "Seasonal (Varies by crop)",
			Agency:      "Ministry of Agriculture & Farmers Welfare",
			Contact:     "1800-110-144",
			Website:     "https://pmfby.gov.in/",
			PostedDate:  now,
		},
		{
			Title:       "Pradhan Mantri Awas Yojana - Gramin",
			Description: "Housing scheme to provide financial assistance for construction of pucca houses in rural areas.",
			Eligibility: "Houseless rural families and those living in dilapidated houses.",
			HowToApply:  "1. Apply through Gram Panchayat.\n2. Submit income proof and land documents.",
			Deadline:    "Ongoing",
			Agency:      "Ministry of Rural Development",
			Contact:     "1800-11-6446",
			Website:     "https://pmayg.nic.in/",
			PostedDate:  now,
		},
	}

	if err := db.Create(&samples).Error; err != nil {
		return fmt.Errorf("failed to seed schemes: %w", err)
	}
	logger.Info("Seeded sample schemes", "count", len(samples))
	return nil
}
