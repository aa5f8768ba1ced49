package routes

import (
	"gramconnect/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("/")
	{
		appHandlers.Home.RegisterRoutes(root)
		appHandlers.Auth.RegisterRoutes(root)
		appHandlers.Job.RegisterRoutes(root)
		appHandlers.Scheme.RegisterRoutes(root)
		appHandlers.Issue.RegisterRoutes(root)
		appHandlers.Product.RegisterRoutes(root)
		appHandlers.Profile.RegisterRoutes(root)
		appHandlers.Upload.RegisterRoutes(root)
	}
}
