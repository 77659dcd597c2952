package service

import (
	"context"

	"github.com/OluRemiFour/kendra-backend/internal/llm"
	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
)

type Posture interface {
	GetPostureReport(ctx context.Context, userID string) (*model.PostureReport, error)
}

type Advisor interface {
	GetThreatReport(ctx context.Context, userID string) ([]model.Threat, error)
}

type Analysis interface {
	RunAnalysis(ctx context.Context, request model.AnalysisRequest) ([]model.Issue, error)
}

type Service struct {
	Posture
	Advisor
	Analysis
}

func NewService(r *repository.Repository, provider llm.Provider) *Service {
	return &Service{
		Posture:  NewPostureService(r),
		Advisor:  NewAdvisorService(r, provider),
		Analysis: NewAnalysisService(r, provider),
	}
}
