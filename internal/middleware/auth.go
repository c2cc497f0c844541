package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/booklib/booklib-go/internal/crypto"
	"github.com/booklib/booklib-go/internal/model"
	"github.com/booklib/booklib-go/internal/repository"
)

// TokenHeader is the request header carrying the auth token.
const TokenHeader = "x-access-token"

type contextKey string

const userKey contextKey = "user"

// UserResolver resolves a token's public identifier to a user record.
type UserResolver interface {
	GetByPublicID(ctx context.Context, publicID string) (*model.User, error)
}

// TokenAuth returns middleware that gates requests on a valid x-access-token
// header. Each request is fully re-verified: signature, expiry, then a user
// lookup; no session state is kept server-side. On success the resolved user
// is placed in the request context for the wrapped handler.
func TokenAuth(secret string, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "A valid token is missing!")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					writeJSONMessage(w, http.StatusUnauthorized, "Token has expired!")
					return
				}
				writeJSONMessage(w, http.StatusUnauthorized, "Invalid token!")
				return
			}

			user, err := users.GetByPublicID(r.Context(), claims.PublicID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					writeJSONMessage(w, http.StatusNotFound, "User not found!")
					return
				}
				writeJSONMessage(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.MessageResponse{Message: msg})
}
