package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/OluRemiFour/kendra-backend/internal/model"
)

type RepoPostgresRepository struct {
	db *sql.DB
}

func NewRepoPostgresRepository(db *sql.DB) *RepoPostgresRepository {
	return &RepoPostgresRepository{db: db}
}

func (r *RepoPostgresRepository) GetRepositories(ctx context.Context, userID string) ([]model.Repository, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT repository_id, user_id, repository_name, last_analyzed_at
		FROM repository
		WHERE user_id = $1
	`, userID)
	if err != nil {
		log.Printf("query error: %v", err)
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var repos []model.Repository
	for rows.Next() {
		var repo model.Repository
		var analyzedAt sql.NullTime
		if err := rows.Scan(&repo.RepositoryID, &repo.UserID, &repo.RepositoryName, &analyzedAt); err != nil {
			log.Printf("scan error: %v", err)
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if analyzedAt.Valid {
			t := analyzedAt.Time
			repo.LastAnalyzedAt = &t
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		log.Printf("rows error: %v", err)
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return repos, nil
}

func (r *RepoPostgresRepository) GetRepository(ctx context.Context, userID, repositoryID string) (*model.Repository, error) {
	var repo model.Repository
	var analyzedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT repository_id, user_id, repository_name, last_analyzed_at
		FROM repository
		WHERE user_id = $1 AND repository_id = $2
	`, userID, repositoryID).Scan(&repo.RepositoryID, &repo.UserID, &repo.RepositoryName, &analyzedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("repository doesn't exist: %s", repositoryID)
			return nil, model.NewNotFoundError()
		}
		log.Printf("scan error: %v", err)
		return nil, fmt.Errorf("scan error: %w", err)
	}
	if analyzedAt.Valid {
		t := analyzedAt.Time
		repo.LastAnalyzedAt = &t
	}

	return &repo, nil
}
