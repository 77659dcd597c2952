package model

import "time"

const PRStatusMerged = "merged"

type PullRequest struct {
	PullRequestID string    `json:"pull_request_id"`
	UserID        string    `json:"user_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
