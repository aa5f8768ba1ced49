package handlers

import (
	"gramconnect/internal/middleware"
	"gramconnect/internal/services"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	uploadService  services.UploadService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, uploadService services.UploadService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService, uploadService: uploadService}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", middleware.LoginRequired(), h.Profile)
	rg.GET("/edit_profile", middleware.LoginRequired(), h.EditForm)
	rg.POST("/edit_profile", middleware.LoginRequired(), h.Edit)
	rg.GET("/settings", middleware.LoginRequired(), h.Settings)
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	page, err := h.profileService.Aggregate(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.missingAccount(c, err)
		return
	}

	h.RenderPage(c, "profile", gin.H{
		"user":         page.User,
		"jobs":         page.Jobs,
		"issues":       page.Issues,
		"products":     page.Products,
		"applications": page.Applications,
	})
}

func (h *ProfileHandler) EditForm(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.profileService.GetUser(h.GetDB(c), userID)
	if err != nil {
		h.missingAccount(c, err)
		return
	}

	h.RenderPage(c, "edit_profile", gin.H{"user": user})
}

func (h *ProfileHandler) Edit(c *gin.Context) {
	var form dto.EditProfileForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		h.RenderForm(c, "edit_profile", "Contact information is required!", errs, form)
		return
	}

	profileImage, appErr := saveOptionalImage(c, h.uploadService, "profile_image", "profile")
	if appErr != nil {
		if appErr.Code == apperrors.CodeValidationFailed {
			h.RenderForm(c, "edit_profile", appErr.Message, nil, form)
			return
		}
		h.Flash(c, "Error uploading profile image. Please try the alternative upload method.")
		profileImage = nil
	}

	bannerImage, appErr := saveOptionalImage(c, h.uploadService, "banner_image", "banner")
	if appErr != nil {
		if appErr.Code == apperrors.CodeValidationFailed {
			h.RenderForm(c, "edit_profile", appErr.Message, nil, form)
			return
		}
		h.Flash(c, "Error uploading banner image. Please try again later.")
		bannerImage = nil
	}

	userID, _ := middleware.CurrentUserID(c)
	user, err := h.profileService.UpdateProfile(h.GetDB(c), userID, &form, profileImage, bannerImage)
	if err != nil {
		h.missingAccount(c, err)
		return
	}

	refreshSession(c, user.Fullname, user.ProfileImage)
	h.RedirectWithFlash(c, "/profile", "Profile updated successfully!")
}

func (h *ProfileHandler) Settings(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.profileService.GetUser(h.GetDB(c), userID)
	if err != nil {
		h.missingAccount(c, err)
		return
	}

	h.RenderPage(c, "settings", gin.H{"user": user})
}

// missingAccount covers the session pointing at a deleted row.
func (h *ProfileHandler) missingAccount(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
		h.RedirectWithFlash(c, "/", "User not found!")
		return
	}
	h.HandleServiceError(c, err)
}

// refreshSession keeps the identity keys in step with profile edits so
// navigation chrome shows the new name and picture immediately.
func refreshSession(c *gin.Context, fullname string, profileImage *string) {
	session := sessions.Default(c)
	session.Set(middleware.SessionFullname, fullname)
	if profileImage != nil && *profileImage != "" {
		session.Set(middleware.SessionProfileImage, *profileImage)
	}
	_ = session.Save()
}
