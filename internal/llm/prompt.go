package llm

import (
	"fmt"
	"strings"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

const (
	// Per-file snippet cap and overall body cap for audit prompts.
	maxSnippetChars = 2000
	maxBodyChars    = 15000
)

// BuildAuditPrompt assembles the repository audit prompt: an instruction
// block with the expected JSON schema, followed by truncated per-file
// source sections until the body cap is reached.
func BuildAuditPrompt(repositoryName string, files []model.SourceFile) string {
	var intro strings.Builder
	intro.WriteString("You are an expert security auditor and software engineer. Perform a deep audit of the following repository:\n")
	fmt.Fprintf(&intro, "- Repository: %s\n", repositoryName)
	intro.WriteString("Identify vulnerabilities, bugs, and performance issues. ")
	intro.WriteString("CRITICAL: Return the answer in STRICT JSON format with an 'issues' array.\n")
	intro.WriteString(`Schema: {"issues": [{"file":"path/to/file","line":42,"type":"security|bug|quality","msg":"...","severity":"CRITICAL|HIGH|MEDIUM|LOW"}]}` + "\n")

	var body strings.Builder
	for _, f := range files {
		snippet := f.Content
		if len(snippet) > maxSnippetChars {
			snippet = snippet[:maxSnippetChars]
		}
		part := fmt.Sprintf("\n--- %s ---\n%s\n", f.Path, snippet)
		if body.Len()+len(part) > maxBodyChars {
			break
		}
		body.WriteString(part)
	}

	return intro.String() + "\n" + body.String()
}

// BuildThreatPrompt assembles the threat report prompt from a user's open
// issues.
func BuildThreatPrompt(issues []model.Issue) string {
	var b strings.Builder
	b.WriteString("You are a cybersecurity threat analyst. Based on the open security issues below, produce a threat report for the affected codebase.\n")
	b.WriteString("CRITICAL: Return the answer in STRICT JSON format with a 'threats' array.\n")
	b.WriteString(`Schema: {"threats": [{"title":"...","severity":"CRITICAL|HIGH|MEDIUM|LOW","likelihood":"...","impact":"...","mitigation":"..."}]}` + "\n")
	b.WriteString("\nOpen issues:\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "- [%s] %s (%s in %s)\n", issue.Severity, issue.Message, issue.IssueType, issue.File)
	}
	return b.String()
}
