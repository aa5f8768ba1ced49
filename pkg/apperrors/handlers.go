package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for errors that surface directly
// instead of via a flash notice.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HandleError writes err as a JSON error response. Unknown errors are
// wrapped as internal errors so their details never reach the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
