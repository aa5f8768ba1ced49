package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gramconnect/internal/storage"
	"gramconnect/pkg/apperrors"
)

type UploadConfig struct {
	MaxSize           int64
	AllowedExtensions []string
}

type UploadService interface {
	// SaveImage validates, stores and verifies an uploaded image and
	// returns the stored filename. purpose is one of profile, banner,
	// direct, issue, product and becomes part of the stored name.
	// A nil header or empty client filename is "no file provided" and
	// yields ("", nil).
	SaveImage(ctx context.Context, username, purpose string, file *multipart.FileHeader) (string, error)
}

type UploadServiceImpl struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(st storage.Storage, cfg UploadConfig) UploadService {
	return &UploadServiceImpl{
		storage: st,
		config:  cfg,
	}
}

func (s *UploadServiceImpl) SaveImage(ctx context.Context, username, purpose string, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}

	if !s.extensionAllowed(file.Filename) {
		return "", apperrors.NewBadRequestError("Invalid file type. Only JPG, JPEG, PNG, and GIF files are allowed.")
	}

	if s.config.MaxSize > 0 && file.Size > s.config.MaxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File is too large. Maximum size is %d bytes.", s.config.MaxSize))
	}

	// username + purpose + unix timestamp keep stored names unique per
	// user and purpose; same-second uploads of the same name can still
	// collide, which is accepted.
	stored := fmt.Sprintf("%s_%s_%d_%s", username, purpose, time.Now().Unix(), sanitizeFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	if err := s.storage.Save(ctx, stored, src); err != nil {
		return "", apperrors.InternalError(err)
	}

	exists, err := s.storage.Exists(ctx, stored)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if !exists {
		return "", apperrors.InternalError(fmt.Errorf("uploaded file %s missing after write", stored))
	}

	return stored, nil
}

func (s *UploadServiceImpl) extensionAllowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	for _, allowed := range s.config.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// sanitizeFilename strips path components and unsafe characters from a
// client-supplied filename.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}
