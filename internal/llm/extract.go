package llm

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

// ExtractArray locates the outermost JSON array in raw model output and
// unmarshals it into v. Returns false when no well-formed array is found.
func ExtractArray(raw string, v any) bool {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v) == nil
}

// ExtractObject does the same for a JSON object.
func ExtractObject(raw string, v any) bool {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v) == nil
}

// ParseThreats pulls the threat list out of raw provider output,
// accepting either the requested {"threats": [...]} wrapper or a bare
// array. Returns an empty list when nothing parses.
func ParseThreats(raw string) []model.Threat {
	var wrapper struct {
		Threats []model.Threat `json:"threats"`
	}
	if ExtractObject(raw, &wrapper) && wrapper.Threats != nil {
		return wrapper.Threats
	}

	var threats []model.Threat
	if ExtractArray(raw, &threats) && threats != nil {
		return threats
	}

	log.Println("threat report parse failed, returning empty list")
	return []model.Threat{}
}

// ParseIssues pulls the audit finding list out of raw provider output,
// accepting either the requested {"issues": [...]} wrapper or a bare
// array. Returns an empty list when nothing parses.
func ParseIssues(raw string) []model.AnalysisIssue {
	var wrapper struct {
		Issues []model.AnalysisIssue `json:"issues"`
	}
	if ExtractObject(raw, &wrapper) && wrapper.Issues != nil {
		return wrapper.Issues
	}

	var issues []model.AnalysisIssue
	if ExtractArray(raw, &issues) && issues != nil {
		return issues
	}

	log.Println("analysis issues parse failed, returning empty list")
	return []model.AnalysisIssue{}
}
