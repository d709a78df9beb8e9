package app

import (
	"fmt"
	"log/slog"

	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/credential"
	"github.com/AlexJCturbo/just-tech-news/internal/database"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
	"github.com/AlexJCturbo/just-tech-news/internal/service"
)

// App connects the database and builds the repository and service layers.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	hasher := credential.NewHasher(cfg.BcryptCost)
	if hasher.Cost() != cfg.BcryptCost {
		slog.Warn("bcrypt cost out of range, using default",
			"configured", cfg.BcryptCost, "cost", hasher.Cost())
	}

	repo := repository.NewRepository(db.DB, hasher)

	services := service.NewService(repo, cfg)

	return db, repo, services, nil
}
