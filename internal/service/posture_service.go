package service

import (
	"context"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/posture"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
)

// Window for the recent pull request activity signal.
const recentPRWindow = 7 * 24 * time.Hour

type PostureService struct {
	repository *repository.Repository
}

func NewPostureService(repo *repository.Repository) *PostureService {
	return &PostureService{repository: repo}
}

// GetPostureReport issues the four reads for the user and hands the
// records to the scorer. Storage errors propagate unchanged; there is no
// partial report.
func (s *PostureService) GetPostureReport(ctx context.Context, userID string) (*model.PostureReport, error) {
	if userID == "" {
		return nil, model.NewEmptyFieldError("user_id")
	}

	open, err := s.repository.GetOpenIssues(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.repository.GetResolvedIssues(ctx, userID)
	if err != nil {
		return nil, err
	}

	repos, err := s.repository.GetRepositories(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-recentPRWindow)
	prs, err := s.repository.GetPullRequestsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return posture.BuildReport(posture.Tally(open, resolved, repos, prs)), nil
}
