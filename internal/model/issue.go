package model

const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"

	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
	IssueStatusIgnored  = "ignored"
)

type Issue struct {
	IssueID      int    `json:"issue_id"`
	UserID       string `json:"user_id"`
	RepositoryID string `json:"repository_id"`
	IssueType    string `json:"issue_type"`
	Severity     string `json:"severity"`
	Status       string `json:"status"`
	File         string `json:"file"`
	Line         int    `json:"line"`
	Message      string `json:"message"`
}
