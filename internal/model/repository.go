package model

import "time"

type Repository struct {
	RepositoryID   string     `json:"repository_id"`
	UserID         string     `json:"user_id"`
	RepositoryName string     `json:"repository_name"`
	LastAnalyzedAt *time.Time `json:"last_analyzed_at,omitempty"`
}
