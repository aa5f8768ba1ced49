package app

import (
	"fmt"

	"gramconnect/internal/config"
	"gramconnect/internal/database"
	"gramconnect/internal/handlers"
	"gramconnect/internal/logger"
	"gramconnect/internal/middleware"
	"gramconnect/internal/repositories"
	"gramconnect/internal/routes"
	"gramconnect/internal/services"
	"gramconnect/internal/storage"
	"gramconnect/internal/validator"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run loads configuration, prepares the database and serves HTTP until
// the process is stopped.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db := MustOpenDatabase(cfg)

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// MustOpenDatabase opens the SQLite database, runs migrations and seeds
// reference data. Any failure here is fatal.
func MustOpenDatabase(cfg *config.Config) *gorm.DB {
	logger.Info("Opening database", "path", cfg.Database.Path)
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database ready")
	return db
}

// SetupRouter wires storage, services, handlers and middleware into a
// ready-to-serve engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: cfg.Upload.Dir,
		BaseURL:  "/static/uploads",
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	schemeRepo := repositories.NewSchemeRepository()
	issueRepo := repositories.NewIssueRepository()
	productRepo := repositories.NewProductRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo),
		JobService:         services.NewJobService(jobRepo),
		SchemeService:      services.NewSchemeService(schemeRepo),
		IssueService:       services.NewIssueService(issueRepo),
		ProductService:     services.NewProductService(productRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo),
		ProfileService:     services.NewProfileService(userRepo, jobRepo, issueRepo, productRepo, applicationRepo),
		UploadService: services.NewUploadService(storageInstance, services.UploadConfig{
			MaxSize:           cfg.Upload.MaxSize,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		}),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		Home:    handlers.NewHomeHandler(base),
		Auth:    handlers.NewAuthHandler(base, sc.AuthService),
		Job:     handlers.NewJobHandler(base, sc.JobService, sc.ApplicationService),
		Scheme:  handlers.NewSchemeHandler(base, sc.SchemeService),
		Issue:   handlers.NewIssueHandler(base, sc.IssueService, sc.UploadService),
		Product: handlers.NewProductHandler(base, sc.ProductService, sc.UploadService),
		Profile: handlers.NewProfileHandler(base, sc.ProfileService, sc.UploadService),
		Upload:  handlers.NewUploadHandler(base, sc.UploadService, sc.ProfileService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.MaxMultipartMemory = cfg.Upload.MaxSize

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})

	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(sessions.Sessions(cfg.Session.CookieName, store))
	ginRouter.Use(middleware.DBMiddleware(db))
	ginRouter.Use(middleware.IdentityMiddleware(repositories.NewUserRepository()))

	ginRouter.Static("/static/uploads", cfg.Upload.Dir)

	return ginRouter
}
