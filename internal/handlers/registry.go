package handlers

// AppHandlers bundles every route-owning handler for registration.
type AppHandlers struct {
	Home    *HomeHandler
	Auth    *AuthHandler
	Job     *JobHandler
	Scheme  *SchemeHandler
	Issue   *IssueHandler
	Product *ProductHandler
	Profile *ProfileHandler
	Upload  *UploadHandler
}
