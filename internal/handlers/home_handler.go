package handlers

import (
	"net/http"

	"gramconnect/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing page and the locale toggle.
type HomeHandler struct {
	*BaseHandler
}

func NewHomeHandler(base *BaseHandler) *HomeHandler {
	return &HomeHandler{
		BaseHandler: base,
	}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/language/:code", h.SetLanguage)
}

func (h *HomeHandler) Index(c *gin.Context) {
	h.RenderPage(c, "index", gin.H{})
}

// SetLanguage stores the locale preference in the session and sends
// the caller back where it came from.
func (h *HomeHandler) SetLanguage(c *gin.Context) {
	session := sessions.Default(c)
	session.Set(middleware.SessionLanguage, c.Param("code"))
	if err := session.Save(); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	next := c.DefaultQuery("next", "/")
	c.Redirect(http.StatusFound, next)
}
