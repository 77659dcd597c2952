package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

type AnalysisPostgresRepository struct {
	db *sql.DB
}

func NewAnalysisPostgresRepository(db *sql.DB) *AnalysisPostgresRepository {
	return &AnalysisPostgresRepository{db: db}
}

// SaveAnalysisResults stores the parsed audit issues and stamps the
// repository's last analysis time in one transaction.
func (r *AnalysisPostgresRepository) SaveAnalysisResults(ctx context.Context, repositoryID string, issues []model.Issue, analyzedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("begin transaction error: %v", err)
		return fmt.Errorf("begin transaction error: %w", err)
	}
	defer func() {
		if err = tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("rollback transaction error: %v", err)
		}
	}()

	for _, issue := range issues {
		_, err = tx.ExecContext(ctx, `
		INSERT INTO issue (user_id, repository_id, issue_type, severity, status, file, line, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, issue.UserID, issue.RepositoryID, issue.IssueType, issue.Severity, issue.Status, issue.File, issue.Line, issue.Message)
		if err != nil {
			log.Printf("exec error: %v", err)
			return fmt.Errorf("exec error: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE repository
		SET last_analyzed_at = $1
		WHERE repository_id = $2
		`, analyzedAt, repositoryID)
	if err != nil {
		log.Printf("exec error: %v", err)
		return fmt.Errorf("exec error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("commit transaction error: %v", err)
		return fmt.Errorf("commit transaction error: %w", err)
	}

	return nil
}
