// Package posture computes the security posture report: a clamped 0-100
// index over weighted open-issue severity counts, with bonus signals for
// remediation progress, analysis coverage and review activity.
package posture

import (
	"fmt"
	"math"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

const (
	weightCritical = 15
	weightHigh     = 8
	weightMedium   = 3
	weightLow      = 1

	resolvedBonusCap = 20
	activityBonusCap = 10
	coverageBonusMax = 10
)

// Counts holds the aggregated inputs to the scoring formula.
type Counts struct {
	Critical      int
	High          int
	Medium        int
	Low           int
	Open          int
	Resolved      int
	AnalyzedRepos int
	TotalRepos    int
	RecentPRs     int
	MergedPRs     int
}

// Tally derives Counts from the raw records returned by storage. The open
// slice must contain only issues whose status is neither resolved nor
// ignored; prs must already be bounded to the recent window.
func Tally(open, resolved []model.Issue, repos []model.Repository, prs []model.PullRequest) Counts {
	c := Counts{
		Open:       len(open),
		Resolved:   len(resolved),
		TotalRepos: len(repos),
		RecentPRs:  len(prs),
	}
	for _, issue := range open {
		switch issue.Severity {
		case model.SeverityCritical:
			c.Critical++
		case model.SeverityHigh:
			c.High++
		case model.SeverityMedium:
			c.Medium++
		case model.SeverityLow:
			c.Low++
		}
	}
	for _, repo := range repos {
		if repo.LastAnalyzedAt != nil {
			c.AnalyzedRepos++
		}
	}
	for _, pr := range prs {
		if pr.Status == model.PRStatusMerged {
			c.MergedPRs++
		}
	}
	return c
}

// BuildReport computes the full posture report from the counts. It is a
// pure function: deterministic, no I/O, never fails.
func BuildReport(c Counts) *model.PostureReport {
	score := float64(100 - weightCritical*c.Critical - weightHigh*c.High - weightMedium*c.Medium - weightLow*c.Low)
	score += math.Min(float64(2*c.Resolved), resolvedBonusCap)
	if c.TotalRepos > 0 {
		score += math.Floor(coverageBonusMax * float64(c.AnalyzedRepos) / float64(c.TotalRepos))
	}
	score += math.Min(float64(2*c.MergedPRs), activityBonusCap)
	index := int(math.Round(math.Min(100, math.Max(0, score))))

	return &model.PostureReport{
		PostureIndex: index,
		Trend:        trend(c),
		Breakdown: model.SeverityBreakdown{
			Critical: c.Critical,
			High:     c.High,
			Medium:   c.Medium,
			Low:      c.Low,
			Resolved: c.Resolved,
			Total:    c.Open + c.Resolved,
		},
		Coverage:        coverage(c),
		Activity:        model.Activity{RecentPRs: c.RecentPRs, MergedPRs: c.MergedPRs},
		Recommendations: recommendations(c),
		HealthAdvisory:  healthAdvisory(index, c),
	}
}

// The improving check runs first and short-circuits the declining check.
func trend(c Counts) string {
	if c.MergedPRs >= 3 && c.Resolved > c.Open {
		return model.TrendImproving
	}
	if c.Critical > 5 || c.High > 10 {
		return model.TrendDeclining
	}
	return model.TrendStable
}

func coverage(c Counts) model.Coverage {
	cov := model.Coverage{Analyzed: c.AnalyzedRepos, Total: c.TotalRepos}
	if c.TotalRepos > 0 {
		cov.Percentage = int(math.Round(float64(c.AnalyzedRepos) / float64(c.TotalRepos) * 100))
	}
	return cov
}

// recommendations returns every applicable entry in fixed priority order,
// falling back to a single INFO entry when nothing fires.
func recommendations(c Counts) []model.Recommendation {
	var recs []model.Recommendation
	if c.Critical > 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.PriorityCritical,
			Message:  fmt.Sprintf("Resolve %d critical severity issue(s) immediately", c.Critical),
		})
	}
	if c.High > 5 {
		recs = append(recs, model.Recommendation{
			Priority: model.PriorityHigh,
			Message:  fmt.Sprintf("Address %d open high severity issues", c.High),
		})
	}
	if c.TotalRepos > c.AnalyzedRepos {
		recs = append(recs, model.Recommendation{
			Priority: model.PriorityMedium,
			Message:  fmt.Sprintf("Run security analysis on %d repositories that have never been analyzed", c.TotalRepos-c.AnalyzedRepos),
		})
	}
	if c.RecentPRs > 0 && c.MergedPRs == 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.PriorityLow,
			Message:  "No merged pull requests in the last 7 days; merge pending remediation work",
		})
	}
	if len(recs) == 0 {
		recs = append(recs, model.Recommendation{
			Priority: model.PriorityInfo,
			Message:  "Security posture is healthy",
		})
	}
	return recs
}

func healthAdvisory(index int, c Counts) string {
	switch {
	case index >= 90:
		return "Your security posture is highly secure. Keep up the current analysis and remediation cadence."
	case index >= 75:
		if c.Critical > 0 {
			return fmt.Sprintf("Your security posture is relatively secure, but %d critical issue(s) still need attention.", c.Critical)
		}
		return fmt.Sprintf("Your security posture is relatively secure; %d high severity issue(s) remain open.", c.High)
	case index >= 50:
		return fmt.Sprintf("Your security posture needs improvement: %d critical and high severity issues are open.", c.Critical+c.High)
	default:
		return fmt.Sprintf("ALERT: %d critical and %d high severity issues require immediate remediation.", c.Critical, c.High)
	}
}
