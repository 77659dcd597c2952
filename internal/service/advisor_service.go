package service

import (
	"context"
	"log"

	"github.com/OluRemiFour/kendra-backend/internal/llm"
	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
)

type AdvisorService struct {
	repository *repository.Repository
	provider   llm.Provider
}

func NewAdvisorService(repo *repository.Repository, provider llm.Provider) *AdvisorService {
	return &AdvisorService{repository: repo, provider: provider}
}

// GetThreatReport asks the provider for a threat report over the user's
// open issues. An unparseable response yields an empty list, not an
// error; zero open issues short-circuit without a provider call.
func (s *AdvisorService) GetThreatReport(ctx context.Context, userID string) ([]model.Threat, error) {
	if userID == "" {
		return nil, model.NewEmptyFieldError("user_id")
	}

	open, err := s.repository.GetOpenIssues(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return []model.Threat{}, nil
	}

	raw, err := s.provider.Complete(ctx, llm.BuildThreatPrompt(open))
	if err != nil {
		log.Printf("provider %s error: %v", s.provider.Name(), err)
		return nil, model.NewProviderError()
	}

	return llm.ParseThreats(raw), nil
}
