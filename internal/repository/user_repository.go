package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tableUsers = "users"

type userRepository struct {
	db        *sqlx.DB
	passwords PasswordHasher
}

// userRow carries the password hash. It never leaves this package.
type userRow struct {
	models.User
	PasswordHash string `db:"password_hash"`
}

func NewUserRepository(db *sqlx.DB, passwords PasswordHasher) UserRepository {
	return &userRepository{db: db, passwords: passwords}
}

func (r *userRepository) CreateUser(ctx context.Context, input models.NewUser) (*models.User, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	// hash before opening the transaction so bcrypt never holds a connection
	hashedPassword, err := r.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	row := userRow{
		User: models.User{
			ID:       uuid.New().String(),
			Username: input.Username,
			Email:    input.Email,
		},
		PasswordHash: hashedPassword,
	}

	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES (:id, :username, :email, :password_hash)
	`

	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			if isUniqueViolation(err) {
				return models.ErrDuplicateEmail
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user := row.User
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return getUser(ctx, r.db, userID)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := r.db.Rebind(`SELECT id, username, email FROM users WHERE email = ?`)

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	query := `SELECT id, username, email FROM users ORDER BY username, id`

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// VerifyPassword authenticates by email. An unknown email and a wrong
// password both yield models.ErrInvalidCredentials.
func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	var row userRow

	query := r.db.Rebind(`SELECT id, username, email, password_hash FROM users WHERE email = ?`)

	err := r.db.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user credentials: %w", err)
	}

	// checking that the password matches the stored hash
	if !r.passwords.Verify(row.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	user := row.User
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, userID string, input models.UserUpdate) (*models.User, error) {
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	var sets []string
	args := map[string]interface{}{"id": userID}

	if input.Username != nil {
		sets = append(sets, "username = :username")
		args["username"] = *input.Username
	}
	if input.Email != nil {
		sets = append(sets, "email = :email")
		args["email"] = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := r.passwords.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "password_hash = :password_hash")
		args["password_hash"] = hashedPassword
	}

	var user *models.User
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if len(sets) > 0 {
			query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = :id"

			result, err := tx.NamedExecContext(ctx, query, args)
			if err != nil {
				if isUniqueViolation(err) {
					return models.ErrDuplicateEmail
				}
				return fmt.Errorf("error updating user: %w", err)
			}

			rowsAffected, err := affected(result)
			if err != nil {
				return err
			}
			if rowsAffected == 0 {
				return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
			}
		}

		var err error
		user, err = getUser(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user; their posts, comments and votes go with them
// through ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) (int64, error) {
	var removed int64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM users WHERE id = ?`), userID)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		removed, err = affected(result)
		return err
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func getUser(ctx context.Context, q sqlx.ExtContext, userID string) (*models.User, error) {
	var user models.User

	query := q.Rebind(`SELECT id, username, email FROM users WHERE id = ?`)

	err := sqlx.GetContext(ctx, q, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return &user, nil
}
