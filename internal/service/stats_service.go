package service

import (
	"context"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
)

type StatsService interface {
	GetStats(ctx context.Context) (*models.SiteStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetStats(ctx context.Context) (*models.SiteStats, error) {
	return t.statsRepo.CountRows(ctx)
}
