package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

type IssuePostgres interface {
	GetOpenIssues(ctx context.Context, userID string) ([]model.Issue, error)
	GetResolvedIssues(ctx context.Context, userID string) ([]model.Issue, error)
}

type RepoPostgres interface {
	GetRepositories(ctx context.Context, userID string) ([]model.Repository, error)
	GetRepository(ctx context.Context, userID, repositoryID string) (*model.Repository, error)
}

type PullRequestPostgres interface {
	GetPullRequestsSince(ctx context.Context, userID string, since time.Time) ([]model.PullRequest, error)
}

type AnalysisPostgres interface {
	SaveAnalysisResults(ctx context.Context, repositoryID string, issues []model.Issue, analyzedAt time.Time) error
}

type Repository struct {
	IssuePostgres
	RepoPostgres
	PullRequestPostgres
	AnalysisPostgres
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		IssuePostgres:       NewIssuePostgresRepository(db),
		RepoPostgres:        NewRepoPostgresRepository(db),
		PullRequestPostgres: NewPRPostgresRepository(db),
		AnalysisPostgres:    NewAnalysisPostgresRepository(db),
	}
}
