package repository

import (
	"context"
	"database/sql"

	"github.com/booklib/booklib-go/internal/model"
)

// BookRepository handles book persistence operations. Every query is scoped to
// an owning user ID; there is no unscoped read or write path.
type BookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create inserts a new book owned by book.UserID and sets the generated ID.
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `INSERT INTO books (user_id, title, author) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, book.UserID, book.Title, book.Author)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	book.ID = id
	return nil
}

// ListByOwner retrieves all books owned by the given user, oldest first.
func (r *BookRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Book, error) {
	query := `SELECT id, user_id, title, author, created_at FROM books WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}
