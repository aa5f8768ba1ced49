package handlers

import (
	"fmt"
	"net/http"

	"gramconnect/internal/middleware"
	"gramconnect/internal/services"
	"gramconnect/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// UploadHandler serves the standalone profile picture upload endpoint.
// Responses are plain text so the endpoint is scriptable from the
// village kiosk clients that predate the JSON pages.
type UploadHandler struct {
	*BaseHandler
	uploadService  services.UploadService
	profileService services.ProfileService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, profileService services.ProfileService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService, profileService: profileService}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/direct-upload", middleware.LoginRequired(), h.UploadForm)
	rg.POST("/direct-upload", middleware.LoginRequired(), h.DirectUpload)
}

func (h *UploadHandler) UploadForm(c *gin.Context) {
	h.RenderPage(c, "direct_upload", gin.H{})
}

func (h *UploadHandler) DirectUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "No file part in the request")
		return
	}
	if file.Filename == "" {
		c.String(http.StatusBadRequest, "No file selected")
		return
	}

	username := middleware.CurrentUsername(c)
	stored, err := h.uploadService.SaveImage(c.Request.Context(), username, "direct", file)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeValidationFailed {
			c.String(http.StatusBadRequest, appErr.Message)
			return
		}
		c.String(http.StatusInternalServerError, "Failed to save the file, please try again")
		return
	}
	if stored == "" {
		c.String(http.StatusBadRequest, "No file selected")
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if err := h.profileService.SetProfileImage(h.GetDB(c), userID, stored); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save the file, please try again")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionProfileImage, stored)
	_ = session.Save()

	c.String(http.StatusOK, fmt.Sprintf("File uploaded successfully as %s", stored))
}
