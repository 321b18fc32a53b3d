package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"socialCPT/internal/apperror"
	handlers "socialCPT/internal/handler"
	"socialCPT/internal/logger"
	"socialCPT/internal/models"
	"socialCPT/internal/service"
)

const invalidTokenMessage = "Invalid or expired token"

// UserLoader resolves a token subject to the stored user.
type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// isPublicPath reports whether the gate lets a request through without
// looking at its Authorization header.
func isPublicPath(method, path string) bool {
	switch {
	case strings.HasPrefix(path, "/api/auth/"),
		strings.HasPrefix(path, "/static/"):
		return true
	case method == http.MethodPost && path == "/api/users":
		return true
	}

	switch path {
	case "/", "/login", "/register", "/dashboard", "/health", "/metrics",
		"/api/users/check-email", "/api/users/search":
		return true
	}
	return false
}

// AuthMiddleware binds the bearer token's user to the request context.
// Requests without a bearer token continue anonymously; handlers that need
// a user reject them. A bearer token that fails verification ends the
// request with 401.
func AuthMiddleware(tokens service.TokenService, users UserLoader, log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			email, err := tokens.ExtractIdentity(tokenString)
			if err != nil || !tokens.Validate(tokenString) {
				log.WithFields(logrus.Fields{"path": r.URL.Path, "method": r.Method}).Warn("Rejected bearer token")
				handlers.WriteError(w, r, http.StatusUnauthorized, invalidTokenMessage)
				return
			}

			if _, bound := handlers.CurrentUser(r.Context()); bound {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			if errors.Is(err, apperror.ErrNotFound) {
				log.WithFields(logrus.Fields{"path": r.URL.Path, "error": err.Error()}).Warn("Token subject could not be loaded")
				handlers.WriteError(w, r, http.StatusUnauthorized, invalidTokenMessage)
				return
			}
			if err != nil {
				logger.LogError(log, "Failed to load token subject", err, logrus.Fields{"path": r.URL.Path})
				handlers.WriteError(w, r, http.StatusInternalServerError, handlers.GenericErrorMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithCurrentUser(r.Context(), user)))
		})
	}
}
