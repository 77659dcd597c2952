package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

type PRPostgresRepository struct {
	db *sql.DB
}

func NewPRPostgresRepository(db *sql.DB) *PRPostgresRepository {
	return &PRPostgresRepository{db: db}
}

func (r *PRPostgresRepository) GetPullRequestsSince(ctx context.Context, userID string, since time.Time) ([]model.PullRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pr_id, user_id, status, created_at
		FROM pr
		WHERE user_id = $1 AND created_at >= $2
	`, userID, since)
	if err != nil {
		log.Printf("query error: %v", err)
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var prs []model.PullRequest
	for rows.Next() {
		var pr model.PullRequest
		if err := rows.Scan(&pr.PullRequestID, &pr.UserID, &pr.Status, &pr.CreatedAt); err != nil {
			log.Printf("scan error: %v", err)
			return nil, fmt.Errorf("scan error: %w", err)
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		log.Printf("rows error: %v", err)
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return prs, nil
}
