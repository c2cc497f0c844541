package model

import "time"

// Book represents a book in the database. UserID is the owning user's internal
// ID, set at creation and never changed.
type Book struct {
	ID        int64
	UserID    int64
	Title     string
	Author    string
	CreatedAt time.Time
}

// AddBookRequest represents an add-book request.
type AddBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookResponse represents a single book in API responses.
type BookResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookListResponse represents the book list response body.
type BookListResponse struct {
	Books []BookResponse `json:"Books"`
}
