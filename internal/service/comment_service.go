package service

import (
	"context"
	"fmt"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
)

type CommentService interface {
	ListPostComments(ctx context.Context, postID string) ([]models.Comment, error)
	GetComment(ctx context.Context, commentID string) (*models.Comment, error)
	CreateComment(ctx context.Context, input models.NewComment) (*models.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID string, input models.CommentUpdate) (*models.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// ListPostComments lists the comments under postID, failing with
// ErrNotFound when the post itself does not exist.
func (c *commentService) ListPostComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := c.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return c.commentRepo.List(ctx, models.CommentFilter{PostID: postID})
}

func (c *commentService) GetComment(ctx context.Context, commentID string) (*models.Comment, error) {
	return c.commentRepo.GetByID(ctx, commentID)
}

func (c *commentService) CreateComment(ctx context.Context, input models.NewComment) (*models.Comment, error) {
	return c.commentRepo.Create(ctx, input)
}

func (c *commentService) UpdateComment(ctx context.Context, actorID, commentID string, input models.CommentUpdate) (*models.Comment, error) {
	if err := c.checkOwner(ctx, actorID, commentID); err != nil {
		return nil, err
	}

	return c.commentRepo.Update(ctx, commentID, input)
}

func (c *commentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	if err := c.checkOwner(ctx, actorID, commentID); err != nil {
		return err
	}

	removed, err := c.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("comment %s: %w", commentID, models.ErrNotFound)
	}

	return nil
}

func (c *commentService) checkOwner(ctx context.Context, actorID, commentID string) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != actorID {
		return models.ErrForbidden
	}
	return nil
}
