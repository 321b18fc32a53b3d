package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialCPT/internal/models"
)

type LikeResponse struct {
	Message string           `json:"message"`
	Liked   bool             `json:"liked"`
	Like    *models.LikeView `json:"like,omitempty"`
}

type LikesResponse struct {
	Count int                `json:"count"`
	Likes []*models.LikeView `json:"likes"`
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	like, err := h.LikeService.Like(r.Context(), mux.Vars(r)["id"], current.UserID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{
		Message: "Post liked successfully",
		Liked:   true,
		Like:    models.ToLikeView(like, current),
	})
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.LikeService.Unlike(r.Context(), mux.Vars(r)["id"], current.UserID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{Message: "Post unliked successfully", Liked: false})
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	like, liked, err := h.LikeService.Toggle(r.Context(), mux.Vars(r)["id"], current.UserID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if !liked {
		writeJSON(w, http.StatusOK, LikeResponse{Message: "Like removed", Liked: false})
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{
		Message: "Post liked successfully",
		Liked:   true,
		Like:    models.ToLikeView(like, current),
	})
}

func (h *Handlers) GetLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.LikeService.ListForPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.UserID)
	}

	users, err := h.UserService.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	views := make([]*models.LikeView, 0, len(likes))
	for _, l := range likes {
		views = append(views, models.ToLikeView(l, users[l.UserID]))
	}

	writeJSON(w, http.StatusOK, LikesResponse{Count: len(views), Likes: views})
}

func (h *Handlers) GetLikesCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.LikeService.CountForPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handlers) LikedByUser(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	liked, err := h.LikeService.IsLikedBy(r.Context(), mux.Vars(r)["id"], current.UserID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}
