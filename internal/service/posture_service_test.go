package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	openIssues     []model.Issue
	resolvedIssues []model.Issue
	repos          []model.Repository
	prs            []model.PullRequest
	repo           *model.Repository

	openErr     error
	resolvedErr error
	reposErr    error
	prsErr      error
	repoErr     error
	saveErr     error

	prSince     time.Time
	savedIssues []model.Issue
	savedRepoID string
}

func (f *fakeStorage) GetOpenIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	return f.openIssues, f.openErr
}

func (f *fakeStorage) GetResolvedIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	return f.resolvedIssues, f.resolvedErr
}

func (f *fakeStorage) GetRepositories(ctx context.Context, userID string) ([]model.Repository, error) {
	return f.repos, f.reposErr
}

func (f *fakeStorage) GetRepository(ctx context.Context, userID, repositoryID string) (*model.Repository, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	return f.repo, nil
}

func (f *fakeStorage) GetPullRequestsSince(ctx context.Context, userID string, since time.Time) ([]model.PullRequest, error) {
	f.prSince = since
	return f.prs, f.prsErr
}

func (f *fakeStorage) SaveAnalysisResults(ctx context.Context, repositoryID string, issues []model.Issue, analyzedAt time.Time) error {
	f.savedRepoID = repositoryID
	f.savedIssues = issues
	return f.saveErr
}

func newFakeRepository(f *fakeStorage) *repository.Repository {
	return &repository.Repository{
		IssuePostgres:       f,
		RepoPostgres:        f,
		PullRequestPostgres: f,
		AnalysisPostgres:    f,
	}
}

func TestGetPostureReportEmptyUserID(t *testing.T) {
	s := NewPostureService(newFakeRepository(&fakeStorage{}))

	_, err := s.GetPostureReport(context.Background(), "")

	var apiError *model.APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, model.CodeEmptyField, apiError.Code)
}

func TestGetPostureReportStorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection refused")
	s := NewPostureService(newFakeRepository(&fakeStorage{openErr: storageErr}))

	_, err := s.GetPostureReport(context.Background(), "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr, "storage errors must propagate unchanged")
}

func TestGetPostureReportZeroCounts(t *testing.T) {
	// Unknown users yield empty result sets, which score as a clean slate.
	s := NewPostureService(newFakeRepository(&fakeStorage{}))

	report, err := s.GetPostureReport(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, 100, report.PostureIndex)
	assert.Equal(t, model.TrendStable, report.Trend)
}

func TestGetPostureReportAggregatesRecords(t *testing.T) {
	now := time.Now()
	fake := &fakeStorage{
		openIssues: []model.Issue{
			{Severity: model.SeverityCritical, Status: model.IssueStatusOpen},
			{Severity: model.SeverityHigh, Status: model.IssueStatusOpen},
		},
		resolvedIssues: []model.Issue{
			{Severity: model.SeverityLow, Status: model.IssueStatusResolved},
		},
		repos: []model.Repository{
			{RepositoryID: "r1", LastAnalyzedAt: &now},
			{RepositoryID: "r2"},
		},
		prs: []model.PullRequest{
			{Status: model.PRStatusMerged, CreatedAt: now},
		},
	}
	s := NewPostureService(newFakeRepository(fake))

	report, err := s.GetPostureReport(context.Background(), "user-1")

	require.NoError(t, err)
	// 100 - 15 - 8 + 2 (resolved) + 5 (coverage 1/2) + 2 (merged) = 86
	assert.Equal(t, 86, report.PostureIndex)
	assert.Equal(t, 1, report.Breakdown.Critical)
	assert.Equal(t, 1, report.Breakdown.High)
	assert.Equal(t, 1, report.Breakdown.Resolved)
	assert.Equal(t, 3, report.Breakdown.Total)
	assert.Equal(t, 50, report.Coverage.Percentage)
	assert.Equal(t, 1, report.Activity.RecentPRs)
	assert.Equal(t, 1, report.Activity.MergedPRs)
}

func TestGetPostureReportUsesSevenDayWindow(t *testing.T) {
	fake := &fakeStorage{}
	s := NewPostureService(newFakeRepository(fake))

	_, err := s.GetPostureReport(context.Background(), "user-1")

	require.NoError(t, err)
	expected := time.Now().Add(-7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, fake.prSince, time.Minute, "pull request lower bound should be now minus 7 days")
}
