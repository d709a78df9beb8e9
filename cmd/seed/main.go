package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/AlexJCturbo/just-tech-news/cmd/app"
	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/AlexJCturbo/just-tech-news/internal/service"
)

type seedConfig struct {
	Users        int
	PostsPerUser int
	Password     string
}

func parseFlags(args []string) (seedConfig, error) {
	var cfg seedConfig

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.IntVar(&cfg.Users, "users", 3, "number of demo users")
	fs.IntVar(&cfg.PostsPerUser, "posts", 2, "posts per demo user")
	fs.StringVar(&cfg.Password, "password", "password1234", "password for every demo user")

	if err := fs.Parse(args); err != nil {
		return seedConfig{}, err
	}
	if cfg.Users < 1 || cfg.PostsPerUser < 0 {
		return seedConfig{}, errors.New("users must be positive and posts non-negative")
	}

	return cfg, nil
}

func main() {
	seedCfg, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("error parsing flags", "error", err)
		os.Exit(2)
	}

	if err := run(seedCfg); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(seedCfg seedConfig) error {
	cfg := config.LoadConfig()

	db, _, services, err := app.App(cfg)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	defer db.CloseDB()

	return seed(context.Background(), services, seedCfg)
}

// seed creates demo users with posts, a comment on every post and an upvote
// from every user on every post.
func seed(ctx context.Context, services *service.Service, cfg seedConfig) error {
	var users []*models.User
	for i := 1; i <= cfg.Users; i++ {
		user, err := services.Auth.Register(ctx, models.NewUser{
			Username: fmt.Sprintf("demo%d", i),
			Email:    fmt.Sprintf("demo%d@example.com", i),
			Password: cfg.Password,
		})
		if err != nil {
			return fmt.Errorf("error creating demo user %d: %w", i, err)
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for j := 1; j <= cfg.PostsPerUser; j++ {
			post, err := services.Post.CreatePost(ctx, models.NewPost{
				Title:    fmt.Sprintf("%s's link #%d", user.Username, j),
				URL:      fmt.Sprintf("https://example.com/%s/%d", user.Username, j),
				AuthorID: user.ID,
			})
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}

	for i, post := range posts {
		commenter := users[(i+1)%len(users)]
		if _, err := services.Comment.CreateComment(ctx, models.NewComment{
			Body:     "Nice find!",
			PostID:   post.ID,
			AuthorID: commenter.ID,
		}); err != nil {
			return err
		}

		for _, user := range users {
			if _, err := services.Post.Vote(ctx, user.ID, post.ID); err != nil {
				return err
			}
		}
	}

	slog.Info("seed complete", "users", len(users), "posts", len(posts))
	return nil
}
