package handlers

import (
	"gramconnect/internal/services"
	"gramconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SchemeHandler struct {
	*BaseHandler
	schemeService services.SchemeService
}

func NewSchemeHandler(base *BaseHandler, schemeService services.SchemeService) *SchemeHandler {
	return &SchemeHandler{BaseHandler: base, schemeService: schemeService}
}

func (h *SchemeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	schemes := rg.Group("/schemes")
	{
		schemes.GET("", h.List)
		schemes.GET("/:id", h.Detail)
	}
}

func (h *SchemeHandler) List(c *gin.Context) {
	schemes, err := h.schemeService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.RenderPage(c, "schemes", gin.H{"schemes": schemes})
}

func (h *SchemeHandler) Detail(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.RedirectWithFlash(c, "/schemes", "Scheme not found!")
		return
	}

	scheme, err := h.schemeService.Get(h.GetDB(c), id)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			h.RedirectWithFlash(c, "/schemes", appErr.Message)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.RenderPage(c, "scheme_details", gin.H{"scheme": scheme})
}
