package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

type IssuePostgresRepository struct {
	db *sql.DB
}

func NewIssuePostgresRepository(db *sql.DB) *IssuePostgresRepository {
	return &IssuePostgresRepository{db: db}
}

func (r *IssuePostgresRepository) GetOpenIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT issue_id, user_id, repository_id, issue_type, severity, status, file, line, message
		FROM issue
		WHERE user_id = $1 AND status NOT IN ($2, $3)
	`, userID, model.IssueStatusResolved, model.IssueStatusIgnored)
	if err != nil {
		log.Printf("query error: %v", err)
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows)
}

func (r *IssuePostgresRepository) GetResolvedIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT issue_id, user_id, repository_id, issue_type, severity, status, file, line, message
		FROM issue
		WHERE user_id = $1 AND status = $2
	`, userID, model.IssueStatusResolved)
	if err != nil {
		log.Printf("query error: %v", err)
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows)
}

func scanIssues(rows *sql.Rows) ([]model.Issue, error) {
	var issues []model.Issue
	for rows.Next() {
		var issue model.Issue
		if err := rows.Scan(
			&issue.IssueID,
			&issue.UserID,
			&issue.RepositoryID,
			&issue.IssueType,
			&issue.Severity,
			&issue.Status,
			&issue.File,
			&issue.Line,
			&issue.Message,
		); err != nil {
			log.Printf("scan error: %v", err)
			return nil, fmt.Errorf("scan error: %w", err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		log.Printf("rows error: %v", err)
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return issues, nil
}
