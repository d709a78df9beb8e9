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

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Upvote records one vote of userID on postID and returns the post with a
// vote count read after the insert, inside the same transaction.
//
// The UNIQUE (user_id, post_id) constraint decides concurrent attempts by the
// same user: the losing insert fails and surfaces models.ErrDuplicateVote.
func (r *voteRepository) Upvote(ctx context.Context, userID, postID string) (*models.VoteResult, error) {
	if userID == "" {
		return nil, models.NewValidationError("user_id", "is required")
	}
	if postID == "" {
		return nil, models.NewValidationError("post_id", "is required")
	}

	vote := models.Vote{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}

	query := `INSERT INTO votes (id, user_id, post_id) VALUES (:id, :user_id, :post_id)`

	var result *models.VoteResult
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		ok, err := rowExists(ctx, tx, tableUsers, userID)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("user_id", "does not reference an existing user")
		}

		ok, err = rowExists(ctx, tx, tablePosts, postID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
		}

		if _, err := tx.NamedExecContext(ctx, query, vote); err != nil {
			switch {
			case isUniqueViolation(err):
				return models.ErrDuplicateVote
			case isForeignKeyViolation(err):
				// the post was deleted between the check and the insert
				return fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
			}
			return fmt.Errorf("error creating vote: %w", err)
		}

		summary, err := getPostSummary(ctx, tx, postID)
		if err != nil {
			return err
		}

		result = &models.VoteResult{Vote: vote, Post: *summary}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *voteRepository) GetByID(ctx context.Context, voteID string) (*models.Vote, error) {
	var vote models.Vote

	query := r.db.Rebind(`SELECT id, user_id, post_id FROM votes WHERE id = ?`)

	err := r.db.GetContext(ctx, &vote, query, voteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vote %s: %w", voteID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting vote: %w", err)
	}

	return &vote, nil
}

func (r *voteRepository) List(ctx context.Context, filter models.VoteFilter) ([]models.Vote, error) {
	query := `SELECT id, user_id, post_id FROM votes WHERE 1 = 1`
	var args []interface{}

	if filter.UserID != "" {
		query += ` AND user_id = ?`
		args = append(args, filter.UserID)
	}
	if filter.PostID != "" {
		query += ` AND post_id = ?`
		args = append(args, filter.PostID)
	}
	query += ` ORDER BY id`

	votes := []models.Vote{}
	if err := r.db.SelectContext(ctx, &votes, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("error listing votes: %w", err)
	}

	return votes, nil
}

func (r *voteRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	var count int

	query := r.db.Rebind(`SELECT COUNT(*) FROM votes WHERE post_id = ?`)

	if err := r.db.GetContext(ctx, &count, query, postID); err != nil {
		return 0, fmt.Errorf("error counting votes: %w", err)
	}

	return count, nil
}

func (r *voteRepository) Delete(ctx context.Context, voteID string) (int64, error) {
	var removed int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM votes WHERE id = ?`), voteID)
		if err != nil {
			return fmt.Errorf("error deleting vote: %w", err)
		}
		removed, err = affected(result)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
