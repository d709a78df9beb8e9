package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/jmoiron/sqlx"
)

// postSummarySelect joins a post with its author and counts its votes. The
// count is a correlated subquery so it is always taken from the vote rows.
const postSummarySelect = `
	SELECT p.id, p.title, p.url, p.author_id, p.created_at,
		u.username AS author_username,
		(SELECT COUNT(*) FROM votes v WHERE v.post_id = p.id) AS vote_count
	FROM posts p
	JOIN users u ON u.id = p.author_id`

type feedRepository struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) ListPostsWithAuthorAndVoteCount(ctx context.Context, filter models.PostFilter) ([]models.PostSummary, error) {
	query := postSummarySelect
	var args []interface{}

	if filter.AuthorID != "" {
		query += ` WHERE p.author_id = ?`
		args = append(args, filter.AuthorID)
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`
	query, args = paginate(query, args, filter.Limit, filter.Offset)

	posts := []models.PostSummary{}
	if err := r.db.SelectContext(ctx, &posts, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (r *feedRepository) GetPostDetail(ctx context.Context, postID string) (*models.PostDetail, error) {
	summary, err := getPostSummary(ctx, r.db, postID)
	if err != nil {
		return nil, err
	}

	query := r.db.Rebind(`
		SELECT c.id, c.body, c.post_id, c.author_id, c.created_at,
			u.username AS author_username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC, c.id ASC
	`)

	comments := []models.CommentView{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("error listing comments for post: %w", err)
	}

	return &models.PostDetail{PostSummary: *summary, Comments: comments}, nil
}

func (r *feedRepository) GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	user, err := getUser(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}

	detail := &models.UserDetail{
		User:       *user,
		Posts:      []models.Post{},
		VotedPosts: []models.Post{},
	}

	authored := r.db.Rebind(`
		SELECT id, title, url, author_id, created_at
		FROM posts
		WHERE author_id = ?
		ORDER BY created_at DESC, id DESC
	`)
	if err := r.db.SelectContext(ctx, &detail.Posts, authored, userID); err != nil {
		return nil, fmt.Errorf("error listing posts by user: %w", err)
	}

	voted := r.db.Rebind(`
		SELECT p.id, p.title, p.url, p.author_id, p.created_at
		FROM posts p
		JOIN votes v ON v.post_id = p.id
		WHERE v.user_id = ?
		ORDER BY p.created_at DESC, p.id DESC
	`)
	if err := r.db.SelectContext(ctx, &detail.VotedPosts, voted, userID); err != nil {
		return nil, fmt.Errorf("error listing posts voted by user: %w", err)
	}

	return detail, nil
}

func getPostSummary(ctx context.Context, q sqlx.ExtContext, postID string) (*models.PostSummary, error) {
	var summary models.PostSummary

	query := q.Rebind(postSummarySelect + ` WHERE p.id = ?`)

	err := sqlx.GetContext(ctx, q, &summary, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting post summary: %w", err)
	}

	return &summary, nil
}
