package handlers

import (
	"fmt"

	"gramconnect/internal/middleware"
	"gramconnect/internal/services"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		// Static routes before the :id wildcard.
		jobs.GET("/new", middleware.LoginRequired(), h.NewForm)
		jobs.POST("/new", middleware.LoginRequired(), h.Create)
		jobs.GET("/:id", h.Detail)
		jobs.GET("/:id/apply", middleware.LoginRequired(), h.ApplyForm)
		jobs.POST("/:id/apply", middleware.LoginRequired(), h.Apply)
	}
	rg.GET("/my-applications", middleware.LoginRequired(), h.MyApplications)
}

func (h *JobHandler) List(c *gin.Context) {
	category := c.Query("category")

	jobs, err := h.jobService.List(h.GetDB(c), category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RenderPage(c, "jobs", gin.H{
		"jobs":              jobs,
		"selected_category": category,
	})
}

func (h *JobHandler) Detail(c *gin.Context) {
	job, ok := h.fetchJob(c)
	if !ok {
		return
	}
	h.RenderPage(c, "job_details", gin.H{"job": job})
}

func (h *JobHandler) NewForm(c *gin.Context) {
	h.RenderPage(c, "new_job", gin.H{})
}

func (h *JobHandler) Create(c *gin.Context) {
	var form dto.NewJobForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		h.RenderForm(c, "new_job", "Title, description and contact information are required!", errs, form)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	if _, err := h.jobService.Create(h.GetDB(c), userID, &form); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RedirectWithFlash(c, "/jobs", "Job posted successfully!")
}

func (h *JobHandler) ApplyForm(c *gin.Context) {
	job, ok := h.fetchJob(c)
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	existing, err := h.applicationService.GetForUserAndJob(h.GetDB(c), userID, job.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	data := gin.H{
		"job":             job,
		"already_applied": existing != nil,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["user"] = user
	}
	h.RenderPage(c, "apply_job", data)
}

func (h *JobHandler) Apply(c *gin.Context) {
	job, ok := h.fetchJob(c)
	if !ok {
		return
	}

	var form dto.ApplyForm
	if !h.BindForm(c, &form) {
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	db := h.GetDB(c)

	if errs := h.ValidateForm(c, &form); errs != nil {
		existing, err := h.applicationService.GetForUserAndJob(db, userID, job.ID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		h.RenderForm(c, "apply_job", "Name and phone number are required!", errs, gin.H{
			"job":             job,
			"already_applied": existing != nil,
			"name":            form.Name,
			"phone":           form.Phone,
			"experience":      form.Experience,
			"message":         form.Message,
		})
		return
	}

	updated, err := h.applicationService.Apply(db, userID, job.ID, &form)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			h.RedirectWithFlash(c, "/jobs", appErr.Message)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	notice := "Your application has been submitted!"
	if updated {
		notice = "Your application has been updated!"
	}
	h.RedirectWithFlash(c, fmt.Sprintf("/jobs/%d", job.ID), notice)
}

func (h *JobHandler) MyApplications(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	applications, err := h.applicationService.ListForUser(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RenderPage(c, "my_applications", gin.H{"applications": applications})
}

// fetchJob resolves the :id parameter. Any miss, including a malformed
// id, redirects to the listing with a notice rather than erroring.
func (h *JobHandler) fetchJob(c *gin.Context) (*dto.JobDetail, bool) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.RedirectWithFlash(c, "/jobs", "Job not found!")
		c.Abort()
		return nil, false
	}

	job, err := h.jobService.Get(h.GetDB(c), id)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			h.RedirectWithFlash(c, "/jobs", appErr.Message)
			c.Abort()
			return nil, false
		}
		h.HandleServiceError(c, err)
		return nil, false
	}
	return job, true
}
