package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// errDanglingReference marks an insert rejected by a foreign key; the
// missing parent is resolved after the transaction has been released.
var errDanglingReference = errors.New("comment references a missing row")

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, input models.NewComment) (*models.Comment, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		Body:      input.Body,
		PostID:    input.PostID,
		AuthorID:  input.AuthorID,
		CreatedAt: now(),
	}

	query := `
		INSERT INTO comments (id, body, post_id, author_id, created_at)
		VALUES (:id, :body, :post_id, :author_id, :created_at)
	`

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		ok, err := rowExists(ctx, tx, tablePosts, comment.PostID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("post_id", "does not reference an existing post")
		}

		ok, err = rowExists(ctx, tx, tableUsers, comment.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("author_id", "does not reference an existing user")
		}

		if _, err := tx.NamedExecContext(ctx, query, comment); err != nil {
			if isForeignKeyViolation(err) {
				return errDanglingReference
			}
			return fmt.Errorf("error creating comment: %w", err)
		}
		return nil
	})
	if errors.Is(err, errDanglingReference) {
		return nil, r.missingReference(ctx, comment)
	}
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// missingReference reports which parent of comment disappeared between the
// existence checks and the insert.
func (r *CommentRepositoryImpl) missingReference(ctx context.Context, comment *models.Comment) error {
	ok, err := rowExists(ctx, r.db, tablePosts, comment.PostID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewValidationError("post_id", "does not reference an existing post")
	}

	ok, err = rowExists(ctx, r.db, tableUsers, comment.AuthorID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewValidationError("author_id", "does not reference an existing user")
	}

	return models.NewValidationError("comment", "references a post or user that no longer exists")
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	return getComment(ctx, r.db, commentID)
}

// List returns comments in conversation order (oldest first).
func (r *CommentRepositoryImpl) List(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	query := `SELECT id, body, post_id, author_id, created_at FROM comments WHERE 1 = 1`
	var args []interface{}

	if filter.PostID != "" {
		query += ` AND post_id = ?`
		args = append(args, filter.PostID)
	}
	if filter.AuthorID != "" {
		query += ` AND author_id = ?`
		args = append(args, filter.AuthorID)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, commentID string, input models.CommentUpdate) (*models.Comment, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	var comment *models.Comment
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if input.Body != nil {
			result, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE comments SET body = ? WHERE id = ?`), *input.Body, commentID)
			if err != nil {
				return fmt.Errorf("error updating comment: %w", err)
			}

			rowsAffected, err := affected(result)
			if err != nil {
				return err
			}
			if rowsAffected == 0 {
				return fmt.Errorf("comment %s: %w", commentID, models.ErrNotFound)
			}
		}

		var err error
		comment, err = getComment(ctx, tx, commentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID string) (int64, error) {
	var removed int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM comments WHERE id = ?`), commentID)
		if err != nil {
			return fmt.Errorf("error deleting comment: %w", err)
		}
		removed, err = affected(result)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func getComment(ctx context.Context, q sqlx.ExtContext, commentID string) (*models.Comment, error) {
	var comment models.Comment

	query := q.Rebind(`SELECT id, body, post_id, author_id, created_at FROM comments WHERE id = ?`)

	err := sqlx.GetContext(ctx, q, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", commentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting comment: %w", err)
	}

	return &comment, nil
}
