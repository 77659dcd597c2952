package model

// Threat is one entry of the LLM-generated threat report.
type Threat struct {
	Title      string `json:"title"`
	Severity   string `json:"severity"`
	Likelihood string `json:"likelihood"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

// AnalysisIssue is the shape the provider is asked to return for each
// finding of a repository audit.
type AnalysisIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Type     string `json:"type"`
	Msg      string `json:"msg"`
	Severity string `json:"severity"`
}

type SourceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type AnalysisRequest struct {
	UserID       string       `json:"user_id"`
	RepositoryID string       `json:"repository_id"`
	Files        []SourceFile `json:"files"`
}
