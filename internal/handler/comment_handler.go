package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialCPT/internal/models"
)

type CommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	Message string              `json:"message"`
	Comment *models.CommentView `json:"comment"`
}

type CommentsResponse struct {
	Count    int                   `json:"count"`
	Comments []*models.CommentView `json:"comments"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.CommentService.Add(r.Context(), mux.Vars(r)["id"], current.UserID, req.Text)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, CommentResponse{
		Message: "Comment added successfully",
		Comment: models.ToCommentView(comment, current),
	})
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	vars := mux.Vars(r)
	comment, err := h.CommentService.Update(r.Context(), vars["id"], vars["commentId"], current.UserID, req.Text)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CommentResponse{
		Message: "Comment updated successfully",
		Comment: models.ToCommentView(comment, current),
	})
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := h.CommentService.Delete(r.Context(), vars["id"], vars["commentId"], current.UserID); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListForPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}

	authors, err := h.UserService.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	views := make([]*models.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, models.ToCommentView(c, authors[c.AuthorID]))
	}

	writeJSON(w, http.StatusOK, CommentsResponse{Count: len(views), Comments: views})
}

func (h *Handlers) GetCommentsCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.CommentService.CountForPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}
