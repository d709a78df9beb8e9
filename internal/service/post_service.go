package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
)

type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostSummary, error)
	GetPost(ctx context.Context, postID string) (*models.PostDetail, error)
	CreatePost(ctx context.Context, input models.NewPost) (*models.Post, error)
	UpdatePost(ctx context.Context, actorID, postID string, input models.PostUpdate) (*models.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	Vote(ctx context.Context, userID, postID string) (*models.VoteResult, error)
}

type postService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
	feedRepo repository.FeedRepository
}

func NewPostService(postRepo repository.PostRepository, voteRepo repository.VoteRepository, feedRepo repository.FeedRepository) PostService {
	return &postService{
		postRepo: postRepo,
		voteRepo: voteRepo,
		feedRepo: feedRepo,
	}
}

func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostSummary, error) {
	return p.feedRepo.ListPostsWithAuthorAndVoteCount(ctx, filter)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.PostDetail, error) {
	return p.feedRepo.GetPostDetail(ctx, postID)
}

func (p *postService) CreatePost(ctx context.Context, input models.NewPost) (*models.Post, error) {
	post, err := p.postRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post created", "post_id", post.ID, "author_id", post.AuthorID)
	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, actorID, postID string, input models.PostUpdate) (*models.Post, error) {
	if err := p.checkOwner(ctx, actorID, postID); err != nil {
		return nil, err
	}

	return p.postRepo.Update(ctx, postID, input)
}

func (p *postService) DeletePost(ctx context.Context, actorID, postID string) error {
	if err := p.checkOwner(ctx, actorID, postID); err != nil {
		return err
	}

	removed, err := p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
	}

	return nil
}

func (p *postService) Vote(ctx context.Context, userID, postID string) (*models.VoteResult, error) {
	result, err := p.voteRepo.Upvote(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "vote recorded",
		"user_id", userID, "post_id", postID, "vote_count", result.Post.VoteCount)
	return result, nil
}

func (p *postService) checkOwner(ctx context.Context, actorID, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return models.ErrForbidden
	}
	return nil
}
