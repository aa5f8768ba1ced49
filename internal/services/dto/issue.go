package dto

type ReportIssueForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Location    string `form:"location" validate:"required"`
	Category    string `form:"category"`
}
