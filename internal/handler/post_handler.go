package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"socialCPT/internal/models"
)

type CreatePostRequest struct {
	Caption  string  `json:"caption" validate:"required"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,optional_url"`
}

type UpdatePostRequest struct {
	Caption  *string `json:"caption"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,optional_url"`
}

// ApiResponse wraps post payloads with a human readable message.
type ApiResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.PostService.Create(r.Context(), current.UserID, req.Caption, req.ImageURL)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	view, err := h.PostService.GetEnriched(r.Context(), post.PostID, current)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{"post_id": post.PostID, "author_id": current.UserID}).Info("Post created")
	writeJSON(w, http.StatusCreated, ApiResponse{Message: "Post created successfully", Data: view})
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.Feed(r.Context(), viewer(r))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Message: "Posts retrieved successfully", Data: posts})
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.UserPosts(r.Context(), normalizeEmail(mux.Vars(r)["email"]), viewer(r))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Message: "User posts retrieved successfully", Data: posts})
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetEnriched(r.Context(), mux.Vars(r)["id"], viewer(r))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Message: "Post retrieved successfully", Data: post})
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	postID := mux.Vars(r)["id"]
	_, err := h.PostService.Update(r.Context(), postID, current.UserID, models.PostUpdate{
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	view, err := h.PostService.GetEnriched(r.Context(), postID, current)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Message: "Post updated successfully", Data: view})
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	postID := mux.Vars(r)["id"]
	if err := h.PostService.Delete(r.Context(), postID, current.UserID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{"post_id": postID, "author_id": current.UserID}).Info("Post deleted")
	writeJSON(w, http.StatusOK, ApiResponse{Message: "Post deleted successfully"})
}
