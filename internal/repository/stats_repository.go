package repository

import (
	"context"
	"fmt"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (*models.SiteStats, error) {
	var stats models.SiteStats

	err := r.db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM posts) AS posts,
			(SELECT COUNT(*) FROM comments) AS comments,
			(SELECT COUNT(*) FROM votes) AS votes
	`)
	if err != nil {
		return nil, fmt.Errorf("error counting rows: %w", err)
	}

	return &stats, nil
}
