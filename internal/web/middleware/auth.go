package middleware

import (
	"context"
	"net/http"

	"github.com/shadowscrew/capeshop/internal/model"
	"github.com/shadowscrew/capeshop/internal/services/auth"
)

type contextKey string

const (
	userContextKey contextKey = "user"
)

// GetUser retrieves the authenticated user from the request context
// Returns nil if no user is authenticated
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// OptionalAuth returns middleware that attempts authentication but doesn't
// require it. Browsing and adding to the cart work logged out; handlers that
// need an account check for themselves so they can flash the right message.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := getUserFromSession(r, authService)
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getUserFromSession(r *http.Request, authService *auth.Service) *model.User {
	cookie, err := r.Cookie("session")
	if err != nil {
		return nil
	}

	user, err := authService.GetUser(cookie.Value)
	if err != nil {
		return nil
	}

	return user
}
