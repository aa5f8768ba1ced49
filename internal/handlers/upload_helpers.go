package handlers

import (
	"errors"
	"net/http"

	"gramconnect/internal/middleware"
	"gramconnect/internal/services"
	"gramconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// saveOptionalImage stores the image submitted under field, if any.
// Returns (nil, nil) when no file was provided. The caller decides how
// an *AppError surfaces: CodeValidationFailed means a rejected file
// (re-render the form), anything else is an I/O failure the request
// may survive by keeping the prior image reference.
func saveOptionalImage(c *gin.Context, upload services.UploadService, field, purpose string) (*string, *apperrors.AppError) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	if file == nil || file.Filename == "" {
		return nil, nil
	}

	stored, err := upload.SaveImage(c.Request.Context(), middleware.CurrentUsername(c), purpose, file)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}
	if stored == "" {
		return nil, nil
	}
	return &stored, nil
}
