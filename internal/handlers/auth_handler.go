package handlers

import (
	"net/http"
	"strings"

	"gramconnect/internal/middleware"
	"gramconnect/internal/models"
	"gramconnect/internal/services"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/register", h.ShowRegister)
	rg.POST("/register", h.Register)
	rg.GET("/login", h.ShowLogin)
	rg.POST("/login", h.Login)
	rg.GET("/logout", h.Logout)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.RenderPage(c, "register", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form dto.RegisterForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		for _, msg := range errs {
			h.Flash(c, msg)
		}
		h.RenderForm(c, "register", "", errs, registerFormEcho(form))
		return
	}

	db := h.GetDB(c)
	user, err := h.authService.Register(db, &form)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeAlreadyExists {
			h.RenderForm(c, "register", appErr.Message, nil, registerFormEcho(form))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	// Auto-login after registration.
	h.establishSession(c, user)
	h.RedirectWithFlash(c, "/", "Registration successful! Welcome to GramConnect.")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.RenderPage(c, "login", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form dto.LoginForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		h.RenderForm(c, "login", "Username and password are required!", errs, gin.H{"username": form.Username})
		return
	}

	db := h.GetDB(c)
	user, err := h.authService.Login(db, &form)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeInvalidCredentials {
			h.RenderForm(c, "login", appErr.Message, nil, gin.H{"username": form.Username})
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.establishSession(c, user)
	h.RedirectWithFlash(c, "/", "Login successful! Welcome back, "+user.Username+"!")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.AddFlash("You have been logged out.")
	if err := session.Save(); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// registerFormEcho returns the submitted values safe to echo back.
// The password never leaves the server.
func registerFormEcho(form dto.RegisterForm) gin.H {
	return gin.H{
		"username": form.Username,
		"fullname": form.Fullname,
		"village":  form.Village,
		"contact":  form.Contact,
	}
}

// establishSession replaces any existing session with the identity of
// the given user.
func (h *AuthHandler) establishSession(c *gin.Context, user *models.User) {
	session := sessions.Default(c)
	session.Clear()
	session.Set(middleware.SessionUserID, user.ID)
	session.Set(middleware.SessionUsername, user.Username)
	session.Set(middleware.SessionFullname, user.DisplayName())
	if user.ProfileImage != nil && strings.TrimSpace(*user.ProfileImage) != "" {
		session.Set(middleware.SessionProfileImage, *user.ProfileImage)
	}
	if err := session.Save(); err != nil {
		h.HandleServiceError(c, err)
	}
}
