package repository

import (
	"context"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/jmoiron/sqlx"
)

// PasswordHasher is the credential hook run by the user repository on create
// and on updates that carry a password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, input models.NewUser) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, input models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) (int64, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, input models.NewPost) (*models.Post, error)
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	Update(ctx context.Context, postID string, input models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, postID string) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, input models.NewComment) (*models.Comment, error)
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	Update(ctx context.Context, commentID string, input models.CommentUpdate) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) (int64, error)
}

type VoteRepository interface {
	Upvote(ctx context.Context, userID, postID string) (*models.VoteResult, error)
	GetByID(ctx context.Context, voteID string) (*models.Vote, error)
	List(ctx context.Context, filter models.VoteFilter) ([]models.Vote, error)
	CountByPost(ctx context.Context, postID string) (int, error)
	Delete(ctx context.Context, voteID string) (int64, error)
}

// FeedRepository assembles cross-entity read shapes. Vote counts are always
// computed from vote rows at read time.
type FeedRepository interface {
	ListPostsWithAuthorAndVoteCount(ctx context.Context, filter models.PostFilter) ([]models.PostSummary, error)
	GetPostDetail(ctx context.Context, postID string) (*models.PostDetail, error)
	GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error)
}

type StatsRepository interface {
	CountRows(ctx context.Context) (*models.SiteStats, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Vote    VoteRepository
	Feed    FeedRepository
	Stats   StatsRepository
}

func NewRepository(db *sqlx.DB, hasher PasswordHasher) *Repository {
	return &Repository{
		User:    NewUserRepository(db, hasher),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Vote:    NewVoteRepository(db),
		Feed:    NewFeedRepository(db),
		Stats:   NewStatsRepository(db),
	}
}
