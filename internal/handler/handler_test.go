package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OluRemiFour/kendra-backend/internal/model"
	"github.com/OluRemiFour/kendra-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPosture struct {
	report *model.PostureReport
	err    error
}

func (s *stubPosture) GetPostureReport(ctx context.Context, userID string) (*model.PostureReport, error) {
	if userID == "" {
		return nil, model.NewEmptyFieldError("user_id")
	}
	return s.report, s.err
}

type stubAdvisor struct {
	threats []model.Threat
	err     error
}

func (s *stubAdvisor) GetThreatReport(ctx context.Context, userID string) ([]model.Threat, error) {
	return s.threats, s.err
}

type stubAnalysis struct {
	issues []model.Issue
	err    error
}

func (s *stubAnalysis) RunAnalysis(ctx context.Context, request model.AnalysisRequest) ([]model.Issue, error) {
	return s.issues, s.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s).InitRoutes()
}

func TestGetPostureReportOK(t *testing.T) {
	report := &model.PostureReport{
		PostureIndex:    100,
		Trend:           model.TrendStable,
		Recommendations: []model.Recommendation{{Priority: model.PriorityInfo, Message: "Security posture is healthy"}},
		HealthAdvisory:  "Your security posture is highly secure.",
	}
	router := newTestRouter(&service.Service{Posture: &stubPosture{report: report}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/security/posture?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got model.PostureReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 100, got.PostureIndex)
	assert.Equal(t, model.TrendStable, got.Trend)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, model.PriorityInfo, got.Recommendations[0].Priority)
}

func TestGetPostureReportMissingUserID(t *testing.T) {
	router := newTestRouter(&service.Service{Posture: &stubPosture{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/security/posture", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPostureReportStorageError(t *testing.T) {
	router := newTestRouter(&service.Service{Posture: &stubPosture{err: errors.New("db down")}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/security/posture?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetThreatReportOK(t *testing.T) {
	router := newTestRouter(&service.Service{Advisor: &stubAdvisor{
		threats: []model.Threat{{Title: "XSS", Severity: model.SeverityHigh}},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/security/threatReport?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Threats []model.Threat `json:"threats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Threats, 1)
	assert.Equal(t, "XSS", got.Threats[0].Title)
}

func TestGetThreatReportProviderFailure(t *testing.T) {
	router := newTestRouter(&service.Service{Advisor: &stubAdvisor{err: model.NewProviderError()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/security/threatReport?user_id=user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRunAnalysisCreated(t *testing.T) {
	router := newTestRouter(&service.Service{Analysis: &stubAnalysis{
		issues: []model.Issue{{RepositoryID: "repo-1", Severity: model.SeverityHigh, Status: model.IssueStatusOpen}},
	}})

	body := `{"user_id":"user-1","repository_id":"repo-1","files":[{"path":"main.go","content":"package main"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got struct {
		Issues []model.Issue `json:"issues"`
		Count  int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Count)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, model.SeverityHigh, got.Issues[0].Severity)
}

func TestRunAnalysisBadJSON(t *testing.T) {
	router := newTestRouter(&service.Service{Analysis: &stubAnalysis{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis/run", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunAnalysisUnknownRepository(t *testing.T) {
	router := newTestRouter(&service.Service{Analysis: &stubAnalysis{err: model.NewNotFoundError()}})

	body := `{"user_id":"user-1","repository_id":"ghost","files":[{"path":"main.go","content":"package main"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
