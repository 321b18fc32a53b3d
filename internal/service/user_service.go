package service

import (
	"context"
	"strings"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
	"socialCPT/internal/repository"
)

const searchLimit = 20

type UserService interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	UpdateProfilePhoto(ctx context.Context, userID, photoURL string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetUserByEmail(ctx, email)
}

// GetUsersByIDs loads users in one query and indexes them by id.
func (s *userService) GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return byID, nil
}

func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.userRepo.ExistsByEmail(ctx, strings.TrimSpace(email))
}

func (s *userService) Search(ctx context.Context, query string) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Validation("Search query is required")
	}
	return s.userRepo.SearchUsers(ctx, query, searchLimit)
}

func (s *userService) UpdateProfilePhoto(ctx context.Context, userID, photoURL string) (*models.User, error) {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil, apperror.Validation("Profile photo URL is required")
	}

	if err := s.userRepo.UpdateProfilePhoto(ctx, userID, photoURL); err != nil {
		return nil, err
	}

	return s.userRepo.GetUserByID(ctx, userID)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
