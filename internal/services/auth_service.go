package services

import (
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, form *dto.RegisterForm) (*models.User, error)
	Login(db *gorm.DB, form *dto.LoginForm) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates the user and returns it so the caller can establish
// a session immediately (auto-login).
func (s *AuthServiceImpl) Register(db *gorm.DB, form *dto.RegisterForm) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     form.Username,
		PasswordHash: string(hashedPassword),
		Fullname:     form.Fullname,
		Village:      form.Village,
		Contact:      form.Contact,
		JoinedDate:   models.Now(),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login verifies the credentials. An unknown username and a wrong
// password produce the same error value.
func (s *AuthServiceImpl) Login(db *gorm.DB, form *dto.LoginForm) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, form.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
