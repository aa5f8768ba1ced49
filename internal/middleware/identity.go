package middleware

import (
	"strconv"
	"strings"

	"gramconnect/internal/logger"
	"gramconnect/internal/models"
	"gramconnect/internal/repositories"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	ContextCurrentUser = "currentUser"
	ContextLocale      = "locale"
)

// DefaultLocale is used when the session has no language preference.
const DefaultLocale = "en"

// IdentityMiddleware resolves the authenticated user and the locale
// preference for every request and exposes them to handlers. Lookup
// failures leave the request unauthenticated rather than erroring.
func IdentityMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		locale := DefaultLocale
		if lang, ok := session.Get(SessionLanguage).(string); ok && lang != "" {
			locale = lang
		}
		c.Set(ContextLocale, locale)

		if userID, ok := CurrentUserID(c); ok {
			user, err := userRepo.FindByID(GetDB(c), userID)
			if err != nil {
				logger.CtxWarn(c.Request.Context(), "identity: failed to load session user", "user_id", userID, "error", err)
			} else {
				c.Set(ContextCurrentUser, user)
				c.Request = c.Request.WithContext(
					logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(user.ID), 10)),
				)

				// Backfill the session image reference for sessions
				// established before the user uploaded one.
				if session.Get(SessionProfileImage) == nil &&
					user.ProfileImage != nil && strings.TrimSpace(*user.ProfileImage) != "" {
					session.Set(SessionProfileImage, *user.ProfileImage)
					_ = session.Save()
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the user loaded by IdentityMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(ContextCurrentUser)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// Locale returns the request's locale preference.
func Locale(c *gin.Context) string {
	if locale, ok := c.Get(ContextLocale); ok {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return DefaultLocale
}
