package handlers

import (
	"gramconnect/internal/middleware"
	"gramconnect/internal/services"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	*BaseHandler
	issueService  services.IssueService
	uploadService services.UploadService
}

func NewIssueHandler(base *BaseHandler, issueService services.IssueService, uploadService services.UploadService) *IssueHandler {
	return &IssueHandler{BaseHandler: base, issueService: issueService, uploadService: uploadService}
}

func (h *IssueHandler) RegisterRoutes(rg *gin.RouterGroup) {
	issues := rg.Group("/issues")
	{
		issues.GET("", h.List)
		issues.GET("/report", middleware.LoginRequired(), h.ReportForm)
		issues.POST("/report", middleware.LoginRequired(), h.Report)
	}
}

func (h *IssueHandler) List(c *gin.Context) {
	issues, err := h.issueService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, "issues", gin.H{"issues": issues})
}

func (h *IssueHandler) ReportForm(c *gin.Context) {
	h.RenderPage(c, "report_issue", gin.H{})
}

func (h *IssueHandler) Report(c *gin.Context) {
	var form dto.ReportIssueForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		h.RenderForm(c, "report_issue", "Title, description and location are required!", errs, form)
		return
	}

	image, appErr := saveOptionalImage(c, h.uploadService, "image", "issue")
	if appErr != nil {
		if appErr.Code == apperrors.CodeValidationFailed {
			h.RenderForm(c, "report_issue", appErr.Message, nil, form)
			return
		}
		// Storage failure. The report still goes through without a photo.
		h.Flash(c, "Could not save the image, the issue was reported without it.")
	}

	userID, _ := middleware.CurrentUserID(c)
	if _, err := h.issueService.Report(h.GetDB(c), userID, &form, image); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RedirectWithFlash(c, "/issues", "Issue reported successfully!")
}
