package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/booklib/booklib-go/internal/middleware"
	"github.com/booklib/booklib-go/internal/model"
	"github.com/booklib/booklib-go/internal/service"
)

// BookHandler handles HTTP requests for the per-user book list.
type BookHandler struct {
	service *service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// HandleListBooks handles GET /bookapi/books requests.
func (h *BookHandler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("A valid token is missing!"))
		return
	}

	resp, err := h.service.ListBooks(r.Context(), user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAddBook handles POST /bookapi/addbook requests.
func (h *BookHandler) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("A valid token is missing!"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, messageResponse("invalid request body"))
		return
	}

	if _, err := h.service.AddBook(r.Context(), user, req); err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrAuthorRequired):
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("new book created"))
}
