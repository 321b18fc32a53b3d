package handlers

import (
	"context"
	"net/http"

	"socialCPT/internal/models"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// WithCurrentUser binds the authenticated principal to ctx.
func WithCurrentUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok && user != nil
}

// viewer returns the principal or nil for anonymous requests.
func viewer(r *http.Request) *models.User {
	user, _ := CurrentUser(r.Context())
	return user
}

// requireUser writes 401 for anonymous callers.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		WriteError(w, r, http.StatusUnauthorized, "You must be logged in")
		return nil, false
	}
	return user, true
}
