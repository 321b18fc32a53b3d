package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"socialCPT/internal/models"
)

type FollowResponse struct {
	Following     bool            `json:"following"`
	Message       string          `json:"message"`
	Follower      *models.UserDTO `json:"follower,omitempty"`
	FollowingUser *models.UserDTO `json:"following_user,omitempty"`
}

type FollowersResponse struct {
	Count     int               `json:"count"`
	Followers []*models.UserDTO `json:"followers"`
}

type FollowingResponse struct {
	Count     int               `json:"count"`
	Following []*models.UserDTO `json:"following"`
}

type ProfileResponse struct {
	User           *models.UserDTO `json:"user"`
	FollowersCount int64           `json:"followers_count"`
	FollowingCount int64           `json:"following_count"`
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.FollowService.Follow(r.Context(), current.UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	if !result.Created {
		writeJSON(w, http.StatusOK, FollowResponse{Following: true, Message: "Already following"})
		return
	}

	writeJSON(w, http.StatusCreated, FollowResponse{
		Following:     true,
		Message:       "User followed successfully",
		Follower:      models.ToUserDTO(result.Follower),
		FollowingUser: models.ToUserDTO(result.Following),
	})
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), current.UserID, mux.Vars(r)["id"]); err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FollowResponse{Following: false, Message: "Unfollowed successfully"})
}

func (h *Handlers) IsFollowing(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	following, err := h.FollowService.IsFollowing(r.Context(), current.UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"following": following})
}

func (h *Handlers) Followers(w http.ResponseWriter, r *http.Request) {
	edges, err := h.FollowService.Followers(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.FollowerID)
	}

	users, err := h.usersInOrder(r.Context(), ids)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FollowersResponse{Count: len(users), Followers: users})
}

func (h *Handlers) Following(w http.ResponseWriter, r *http.Request) {
	edges, err := h.FollowService.Following(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.FollowingID)
	}

	users, err := h.usersInOrder(r.Context(), ids)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FollowingResponse{Count: len(users), Following: users})
}

func (h *Handlers) FollowersCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.FollowService.FollowersCount(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handlers) FollowingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.FollowService.FollowingCount(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	followers, err := h.FollowService.FollowersCount(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	following, err := h.FollowService.FollowingCount(r.Context(), userID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		User:           models.ToUserDTO(user),
		FollowersCount: followers,
		FollowingCount: following,
	})
}

// usersInOrder resolves ids to DTOs in one lookup, keeping the order of ids.
func (h *Handlers) usersInOrder(ctx context.Context, ids []string) ([]*models.UserDTO, error) {
	byID, err := h.UserService.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserDTO, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, models.ToUserDTO(u))
		}
	}
	return out, nil
}
