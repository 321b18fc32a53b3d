package handlers

import (
	"net/http"

	"socialCPT/internal/models"
)

type UpdatePhotoRequest struct {
	ProfilePhotoURL string `json:"profilePhotoUrl" validate:"required,url"`
}

type UserListResponse struct {
	Count int               `json:"count"`
	Users []*models.UserDTO `json:"users"`
}

type UserResponse struct {
	Message string          `json:"message"`
	User    *models.UserDTO `json:"user"`
}

func (h *Handlers) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := normalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		WriteError(w, r, http.StatusBadRequest, "email is required")
		return
	}

	exists, err := h.UserService.ExistsByEmail(r.Context(), email)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserListResponse{
		Count: len(users),
		Users: models.ToUserDTOs(users),
	})
}

func (h *Handlers) UpdateProfilePhoto(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdatePhotoRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateProfilePhoto(r.Context(), current.UserID, req.ProfilePhotoURL)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{
		Message: "Profile photo updated successfully",
		User:    models.ToUserDTO(user),
	})
}
