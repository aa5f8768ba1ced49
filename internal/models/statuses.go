package models

// Free-text status values. Nothing in the portal transitions them yet;
// rows are created pending and stay that way until an operator edits
// the store directly.
const (
	IssueStatusPending       = "Pending"
	ApplicationStatusPending = "Pending"
)
