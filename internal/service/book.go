package service

import (
	"context"
	"errors"

	"github.com/booklib/booklib-go/internal/model"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrAuthorRequired = errors.New("author is required")
)

// BookStore is the persistence contract the book service depends on.
type BookStore interface {
	Create(ctx context.Context, book *model.Book) error
	ListByOwner(ctx context.Context, userID int64) ([]model.Book, error)
}

// BookService handles book business logic. Every operation takes the
// authenticated user resolved by the auth middleware; ownership scoping is
// applied here and in the store, never left to the caller.
type BookService struct {
	store BookStore
}

// NewBookService creates a new BookService.
func NewBookService(store BookStore) *BookService {
	return &BookService{store: store}
}

// AddBook creates a book owned by the given user.
func (s *BookService) AddBook(ctx context.Context, user *model.User, req model.AddBookRequest) (model.BookResponse, error) {
	if req.Title == "" {
		return model.BookResponse{}, ErrTitleRequired
	}
	if req.Author == "" {
		return model.BookResponse{}, ErrAuthorRequired
	}

	book := &model.Book{
		UserID: user.ID,
		Title:  req.Title,
		Author: req.Author,
	}

	if err := s.store.Create(ctx, book); err != nil {
		return model.BookResponse{}, err
	}

	return model.BookResponse{
		ID:     book.ID,
		Title:  book.Title,
		Author: book.Author,
	}, nil
}

// ListBooks returns all books owned by the given user. Owning no books is not
// an error; the response always carries a non-nil slice.
func (s *BookService) ListBooks(ctx context.Context, user *model.User) (model.BookListResponse, error) {
	books, err := s.store.ListByOwner(ctx, user.ID)
	if err != nil {
		return model.BookListResponse{}, err
	}

	resp := model.BookListResponse{Books: make([]model.BookResponse, len(books))}
	for i, b := range books {
		resp.Books[i] = model.BookResponse{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
		}
	}

	return resp, nil
}
