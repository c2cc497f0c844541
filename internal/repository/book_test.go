package repository

import (
	"testing"
)

func TestNewBookRepository(t *testing.T) {
	repo := NewBookRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil BookRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}
