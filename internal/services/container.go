package services

// ServiceContainer bundles every service for wiring in app setup.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	SchemeService      SchemeService
	IssueService       IssueService
	ProductService     ProductService
	ApplicationService ApplicationService
	ProfileService     ProfileService
	UploadService      UploadService
}
