package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/booklib/booklib-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicatePublicID = errors.New("public id already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// The unique keys on username and public_id are the authority for races.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (public_id, username, password_hash, admin) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.PublicID, user.Username, user.PasswordHash, user.Admin)
	if err != nil {
		if isDuplicateEntryError(err) {
			if strings.Contains(err.Error(), "public_id") {
				return ErrDuplicatePublicID
			}
			return ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by their username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, public_id, username, password_hash, admin, created_at FROM users WHERE username = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.PublicID, &user.Username, &user.PasswordHash, &user.Admin, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByPublicID retrieves a user by the public identifier carried in tokens.
func (r *UserRepository) GetByPublicID(ctx context.Context, publicID string) (*model.User, error) {
	query := `SELECT id, public_id, username, password_hash, admin, created_at FROM users WHERE public_id = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, publicID).Scan(
		&user.ID, &user.PublicID, &user.Username, &user.PasswordHash, &user.Admin, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
