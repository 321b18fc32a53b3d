package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type HomeResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeResponse{Service: "socialCPT", Status: "ok"})
}

// RegisterRoutes mounts every API route on r. Fixed segments such as
// /api/users/search are registered before their {id} siblings.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	setFallbacks(r)

	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Subrouters resolve their own misses; the root fallbacks never see them.
	api := r.PathPrefix("/api").Subrouter()
	setFallbacks(api)

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/me", h.Me).Methods(http.MethodGet)

	api.HandleFunc("/users", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/check-email", h.CheckEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/search", h.SearchUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/profile/photo", h.UpdateProfilePhoto).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/follow", h.Follow).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/unfollow", h.Unfollow).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/is-following", h.IsFollowing).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/followers", h.Followers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/following", h.Following).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/followers/count", h.FollowersCount).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/following/count", h.FollowingCount).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/profile", h.Profile).Methods(http.MethodGet)

	api.HandleFunc("/posts", h.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/user/{email}", h.GetUserPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	api.HandleFunc("/posts/{id}/like", h.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/unlike", h.UnlikePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/like/toggle", h.ToggleLike).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/likes", h.GetLikes).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/likes/count", h.GetLikesCount).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/liked-by-user", h.LikedByUser).Methods(http.MethodGet)

	api.HandleFunc("/posts/{id}/comments", h.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comments", h.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/comments/count", h.GetCommentsCount).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comments/{commentId}", h.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}/comments/{commentId}", h.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/images", h.UploadImage).Methods(http.MethodPost)
}

func setFallbacks(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
