package apperrors

import "net/http"

// Factories and predefined values for the portal's business errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404-class AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidCredentials deliberately does not distinguish an unknown
// username from a wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password!",
	http.StatusUnauthorized,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already exists! Please choose another one.",
	http.StatusConflict,
)
