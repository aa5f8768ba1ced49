package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gramconnect/internal/storage"
	"gramconnect/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadService(t *testing.T) UploadService {
	t.Helper()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return NewUploadService(st, UploadConfig{
		MaxSize:           1 << 20,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif"},
	})
}

// fileHeader builds a *multipart.FileHeader the way gin receives one.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestSaveImageStoresWithQualifiedName(t *testing.T) {
	svc := newUploadService(t)

	stored, err := svc.SaveImage(context.Background(), "asha", "profile", fileHeader(t, "My Photo.PNG", "png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "asha_profile_"), "stored=%s", stored)
	assert.True(t, strings.HasSuffix(stored, "_My_Photo.PNG"), "stored=%s", stored)
}

func TestSaveImageNoFileIsNotAnError(t *testing.T) {
	svc := newUploadService(t)

	stored, err := svc.SaveImage(context.Background(), "asha", "profile", nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSaveImageRejectsDisallowedExtension(t *testing.T) {
	svc := newUploadService(t)

	for _, name := range []string{"notes.txt", "payload.php", "archive.tar.gz", "noext"} {
		_, err := svc.SaveImage(context.Background(), "asha", "profile", fileHeader(t, name, "x"))
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, "file %s should be rejected", name)
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	}
}

func TestSaveImageAcceptsUppercaseExtensions(t *testing.T) {
	svc := newUploadService(t)

	for _, name := range []string{"a.PNG", "b.Jpg", "c.JPEG", "d.gif"} {
		_, err := svc.SaveImage(context.Background(), "asha", "direct", fileHeader(t, name, "x"))
		assert.NoError(t, err, "file %s should be accepted", name)
	}
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	st, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	svc := NewUploadService(st, UploadConfig{
		MaxSize:           8,
		AllowedExtensions: []string{"png"},
	})

	_, err = svc.SaveImage(context.Background(), "asha", "profile", fileHeader(t, "big.png", "way more than eight bytes"))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, fmt.Sprintf("File is too large. Maximum size is %d bytes.", 8), appErr.Message)
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":             "photo.png",
		"../../etc/passwd":      "passwd",
		"..\\..\\win\\boot.ini": "boot.ini",
		"my photo (1).png":      "my_photo__1_.png",
		"....":                  "file",
		"résumé.png":            "r_sum_.png",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeFilename(input), "input=%q", input)
	}
}
