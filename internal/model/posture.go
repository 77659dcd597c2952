package model

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"

	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
	PriorityInfo     = "INFO"
)

type Recommendation struct {
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

type SeverityBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

type Coverage struct {
	Analyzed   int `json:"analyzed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type Activity struct {
	RecentPRs int `json:"recentPRs"`
	MergedPRs int `json:"mergedPRs"`
}

type PostureReport struct {
	PostureIndex    int               `json:"postureIndex"`
	Trend           string            `json:"trend"`
	Breakdown       SeverityBreakdown `json:"breakdown"`
	Coverage        Coverage          `json:"coverage"`
	Activity        Activity          `json:"activity"`
	Recommendations []Recommendation  `json:"recommendations"`
	HealthAdvisory  string            `json:"healthAdvisory"`
}
