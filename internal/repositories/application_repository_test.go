package repositories

import (
	"path/filepath"
	"testing"

	"gramconnect/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Job{}, &models.JobApplication{},
	))
	return db
}

func seedUserAndJob(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	user := &models.User{
		Username:     "asha",
		PasswordHash: "x",
		Contact:      "9876500000",
		JoinedDate:   models.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	job := &models.Job{
		Title:       "Farm help",
		Description: "Seasonal work",
		Contact:     "9876511111",
		UserID:      user.ID,
		PostedDate:  models.Now(),
	}
	require.NoError(t, db.Create(job).Error)
	return user.ID, job.ID
}

func TestUpsertKeepsOneRowPerUserAndJob(t *testing.T) {
	db := openTestDB(t)
	userID, jobID := seedUserAndJob(t, db)
	repo := NewApplicationRepository()

	first := &models.JobApplication{
		JobID:           jobID,
		UserID:          userID,
		Name:            "Asha",
		Phone:           "9876500000",
		Experience:      "2 years",
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}
	require.NoError(t, repo.Upsert(db, first))

	second := &models.JobApplication{
		JobID:           jobID,
		UserID:          userID,
		Name:            "Asha Devi",
		Phone:           "9876599999",
		Message:         "Available immediately",
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}
	require.NoError(t, repo.Upsert(db, second))

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	stored, err := repo.FindByUserAndJob(db, userID, jobID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Devi", stored.Name)
	assert.Equal(t, "9876599999", stored.Phone)
	assert.Equal(t, "Available immediately", stored.Message)
}

func TestUpsertPreservesReviewedStatus(t *testing.T) {
	db := openTestDB(t)
	userID, jobID := seedUserAndJob(t, db)
	repo := NewApplicationRepository()

	require.NoError(t, repo.Upsert(db, &models.JobApplication{
		JobID: jobID, UserID: userID,
		Name: "Asha", Phone: "9876500000",
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}))
	require.NoError(t, db.Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Update("status", "Shortlisted").Error)

	// The resubmission replaces the details but not the review status.
	require.NoError(t, repo.Upsert(db, &models.JobApplication{
		JobID: jobID, UserID: userID,
		Name: "Asha", Phone: "9876500000",
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}))

	stored, err := repo.FindByUserAndJob(db, userID, jobID)
	require.NoError(t, err)
	assert.Equal(t, "Shortlisted", stored.Status)
}

func TestListByUserJoinsJobDetails(t *testing.T) {
	db := openTestDB(t)
	userID, jobID := seedUserAndJob(t, db)
	repo := NewApplicationRepository()

	require.NoError(t, repo.Upsert(db, &models.JobApplication{
		JobID: jobID, UserID: userID,
		Name: "Asha", Phone: "9876500000",
		ApplicationDate: models.Now(),
		Status:          models.ApplicationStatusPending,
	}))

	rows, err := repo.ListByUser(db, userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Farm help", rows[0].JobTitle)
	assert.Equal(t, jobID, rows[0].JobID)
}
