package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tablePosts = "posts"

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, input models.NewPost) (*models.Post, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		Title:     input.Title,
		URL:       input.URL,
		AuthorID:  input.AuthorID,
		CreatedAt: now(),
	}

	query := `
		INSERT INTO posts (id, title, url, author_id, created_at)
		VALUES (:id, :title, :url, :author_id, :created_at)
	`

	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		ok, err := rowExists(ctx, tx, tableUsers, post.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("author_id", "does not reference an existing user")
		}

		if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
			if isForeignKeyViolation(err) {
				return models.NewValidationError("author_id", "does not reference an existing user")
			}
			return fmt.Errorf("error creating post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	return getPost(ctx, r.DB, postID)
}

// List returns posts newest first, optionally limited to one author.
func (r *PostRepositoryImpl) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	query := `SELECT id, title, url, author_id, created_at FROM posts`
	var args []interface{}

	if filter.AuthorID != "" {
		query += ` WHERE author_id = ?`
		args = append(args, filter.AuthorID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	query, args = paginate(query, args, filter.Limit, filter.Offset)

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, r.DB.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

// Update writes only the fields present in input. created_at and author_id
// are never modified.
func (r *PostRepositoryImpl) Update(ctx context.Context, postID string, input models.PostUpdate) (*models.Post, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	var sets []string
	args := map[string]interface{}{"id": postID}

	if input.Title != nil {
		sets = append(sets, "title = :title")
		args["title"] = *input.Title
	}
	if input.URL != nil {
		sets = append(sets, "url = :url")
		args["url"] = *input.URL
	}

	var post *models.Post
	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if len(sets) > 0 {
			query := "UPDATE posts SET " + strings.Join(sets, ", ") + " WHERE id = :id"

			result, err := tx.NamedExecContext(ctx, query, args)
			if err != nil {
				return fmt.Errorf("error updating post: %w", err)
			}

			rowsAffected, err := affected(result)
			if err != nil {
				return err
			}
			if rowsAffected == 0 {
				return fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
			}
		}

		var err error
		post, err = getPost(ctx, tx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Delete removes the post along with its comments and votes.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) (int64, error) {
	var removed int64

	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM posts WHERE id = ?`), postID)
		if err != nil {
			return fmt.Errorf("error deleting post: %w", err)
		}
		removed, err = affected(result)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func getPost(ctx context.Context, q sqlx.ExtContext, postID string) (*models.Post, error) {
	var post models.Post

	query := q.Rebind(`SELECT id, title, url, author_id, created_at FROM posts WHERE id = ?`)

	err := sqlx.GetContext(ctx, q, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	return &post, nil
}

func paginate(query string, args []interface{}, limit, offset int) (string, []interface{}) {
	if limit <= 0 {
		return query, args
	}
	query += ` LIMIT ? OFFSET ?`
	if offset < 0 {
		offset = 0
	}
	return query, append(args, limit, offset)
}

// now is the insertion timestamp, truncated to what postgres stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
