package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/llm"
	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
)

type AnalysisService struct {
	repository *repository.Repository
	provider   llm.Provider
}

func NewAnalysisService(repo *repository.Repository, provider llm.Provider) *AnalysisService {
	return &AnalysisService{repository: repo, provider: provider}
}

// RunAnalysis audits the submitted source snippets with the provider,
// persists the parsed issues and stamps the repository's analysis time.
// A response with no parseable issues is reported as a provider failure
// rather than stored as an empty result, so coverage stats never count
// an analysis that produced nothing readable.
func (s *AnalysisService) RunAnalysis(ctx context.Context, request model.AnalysisRequest) ([]model.Issue, error) {
	if request.UserID == "" {
		return nil, model.NewEmptyFieldError("user_id")
	}
	if request.RepositoryID == "" {
		return nil, model.NewEmptyFieldError("repository_id")
	}
	if len(request.Files) == 0 {
		return nil, model.NewEmptyFieldError("files")
	}

	repo, err := s.repository.GetRepository(ctx, request.UserID, request.RepositoryID)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.Complete(ctx, llm.BuildAuditPrompt(repo.RepositoryName, request.Files))
	if err != nil {
		log.Printf("provider %s error: %v", s.provider.Name(), err)
		return nil, model.NewProviderError()
	}

	parsed := llm.ParseIssues(raw)
	if len(parsed) == 0 {
		log.Printf("provider %s returned no parseable issues", s.provider.Name())
		return nil, model.NewProviderError()
	}

	issues := make([]model.Issue, 0, len(parsed))
	for _, p := range parsed {
		issues = append(issues, model.Issue{
			UserID:       request.UserID,
			RepositoryID: request.RepositoryID,
			IssueType:    p.Type,
			Severity:     normalizeSeverity(p.Severity),
			Status:       model.IssueStatusOpen,
			File:         p.File,
			Line:         p.Line,
			Message:      p.Msg,
		})
	}

	if err := s.repository.SaveAnalysisResults(ctx, request.RepositoryID, issues, time.Now()); err != nil {
		return nil, err
	}

	return issues, nil
}

func normalizeSeverity(severity string) string {
	switch strings.ToUpper(severity) {
	case model.SeverityCritical:
		return model.SeverityCritical
	case model.SeverityHigh:
		return model.SeverityHigh
	case model.SeverityMedium:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
