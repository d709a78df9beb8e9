package service

import (
	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
)

type Service struct {
	User    UserService
	Post    PostService
	Comment CommentService
	Auth    AuthService
	Stats   StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		User:    NewUserService(rep.User, rep.Feed),
		Post:    NewPostService(rep.Post, rep.Vote, rep.Feed),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Auth:    NewAuthService(rep.User, cfg),
		Stats:   NewStatsService(rep.Stats),
	}
}
