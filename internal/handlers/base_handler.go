package handlers

import (
	"net/http"
	"strconv"

	"gramconnect/internal/logger"
	"gramconnect/internal/middleware"
	"gramconnect/internal/validator"
	"gramconnect/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB extracts the *gorm.DB (pool or per-test transaction) placed in
// the context by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	return middleware.GetDB(c)
}

// BindForm binds the submitted form into obj. A bind failure is a
// malformed request, not a validation failure, and answers 400.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind form", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// ValidateForm returns per-field messages, or nil when obj is valid.
func (h *BaseHandler) ValidateForm(c *gin.Context, obj interface{}) map[string]string {
	err := h.validator.Validate(obj)
	if err == nil {
		return nil
	}
	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.CtxWarn(c.Request.Context(), "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		return vErr.Errors
	}
	logger.CtxWithError(c.Request.Context(), "Internal validator error", err, "path", c.Request.URL.Path)
	return map[string]string{"form": "Invalid submission"}
}

// Flash records a one-time notice for the next rendered page.
func (h *BaseHandler) Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to save session flash", err)
	}
}

// Flashes pops all pending notices.
func (h *BaseHandler) Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to clear session flashes", err)
		}
	}
	notices := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			notices = append(notices, s)
		}
	}
	return notices
}

// RedirectWithFlash records a notice and redirects.
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, location, message string) {
	h.Flash(c, message)
	c.Redirect(http.StatusFound, location)
}

// RenderPage answers 200 with the page payload plus pending notices
// and the request identity.
func (h *BaseHandler) RenderPage(c *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["page"] = page
	data["notices"] = h.Flashes(c)
	data["locale"] = middleware.Locale(c)

	identity := gin.H{"is_authenticated": false}
	if user, ok := middleware.CurrentUser(c); ok {
		identity = gin.H{
			"is_authenticated": true,
			"id":               user.ID,
			"username":         user.Username,
			"fullname":         user.DisplayName(),
			"profile_image":    user.ProfileImage,
		}
	}
	data["current_user"] = identity

	c.JSON(http.StatusOK, data)
}

// RenderForm re-renders a form after a failed submission: notice
// recorded, field errors and the submitted values echoed back, HTTP
// 200 as the original surface answered.
func (h *BaseHandler) RenderForm(c *gin.Context, page, notice string, errs map[string]string, form interface{}) {
	if notice != "" {
		h.Flash(c, notice)
	}
	data := gin.H{}
	if form != nil {
		data["form"] = form
	}
	if errs != nil {
		data["errors"] = errs
	}
	h.RenderPage(c, page, data)
}

// HandleServiceError is the fallback for errors with no specified
// redirect behavior.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		logger.CtxWarn(c.Request.Context(), "Service error", "error", appErr.Message, "path", c.Request.URL.Path)
		apperrors.HandleError(c, appErr)
		return
	}
	logger.CtxWithError(c.Request.Context(), "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ParseParamUint parses a numeric path parameter.
func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key)
	}
	return uint(value), nil
}
