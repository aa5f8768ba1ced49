package services

import (
	"context"

	"gramconnect/internal/logger"
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	// Aggregate assembles the profile view. The user lookup is fatal;
	// every other sub-fetch fails closed to an empty list.
	Aggregate(ctx context.Context, db *gorm.DB, userID uint) (*dto.ProfilePage, error)

	GetUser(db *gorm.DB, userID uint) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID uint, form *dto.EditProfileForm, profileImage, bannerImage *string) (*models.User, error)
	SetProfileImage(db *gorm.DB, userID uint, filename string) error
}

type ProfileServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	issueRepo       repositories.IssueRepository
	productRepo     repositories.ProductRepository
	applicationRepo repositories.ApplicationRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	issueRepo repositories.IssueRepository,
	productRepo repositories.ProductRepository,
	applicationRepo repositories.ApplicationRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		issueRepo:       issueRepo,
		productRepo:     productRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *ProfileServiceImpl) Aggregate(ctx context.Context, db *gorm.DB, userID uint) (*dto.ProfilePage, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "User not found!")
		}
		return nil, apperrors.InternalError(err)
	}

	page := &dto.ProfilePage{
		User:         user,
		Jobs:         []models.Job{},
		Issues:       []models.Issue{},
		Products:     []models.Product{},
		Applications: []repositories.ApplicationWithJob{},
	}

	if jobs, err := s.jobRepo.ListByUser(db, userID); err != nil {
		logger.CtxWarn(ctx, "profile: failed to fetch jobs", "user_id", userID, "error", err)
	} else {
		page.Jobs = jobs
	}

	if issues, err := s.issueRepo.ListByUser(db, userID); err != nil {
		logger.CtxWarn(ctx, "profile: failed to fetch issues", "user_id", userID, "error", err)
	} else {
		page.Issues = issues
	}

	if products, err := s.productRepo.ListByUser(db, userID); err != nil {
		logger.CtxWarn(ctx, "profile: failed to fetch products", "user_id", userID, "error", err)
	} else {
		page.Products = products
	}

	if apps, err := s.applicationRepo.ListByUser(db, userID); err != nil {
		logger.CtxWarn(ctx, "profile: failed to fetch applications", "user_id", userID, "error", err)
	} else {
		page.Applications = apps
	}

	return page, nil
}

func (s *ProfileServiceImpl) GetUser(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "User not found!")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile writes the editable fields. A nil image argument keeps
// the user's current image reference untouched.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID uint, form *dto.EditProfileForm, profileImage, bannerImage *string) (*models.User, error) {
	user, err := s.GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	user.Fullname = form.Fullname
	user.Village = form.Village
	user.Contact = form.Contact
	if profileImage != nil {
		user.ProfileImage = profileImage
	}
	if bannerImage != nil {
		user.BannerImage = bannerImage
	}

	if err := s.userRepo.UpdateProfile(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "User not found!")
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *ProfileServiceImpl) SetProfileImage(db *gorm.DB, userID uint, filename string) error {
	if err := s.userRepo.UpdateProfileImage(db, userID, filename); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "users", "User not found!")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
