package service

import (
	"context"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
	"socialCPT/internal/repository"
)

// FollowResult describes the outcome of a follow request. Created is false
// when the edge already existed and nothing was written.
type FollowResult struct {
	Edge      *models.Follow
	Follower  *models.User
	Following *models.User
	Created   bool
}

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID string) (*FollowResult, error)
	Unfollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	Followers(ctx context.Context, userID string) ([]*models.Follow, error)
	Following(ctx context.Context, userID string) ([]*models.Follow, error)
	FollowersCount(ctx context.Context, userID string) (int64, error)
	FollowingCount(ctx context.Context, userID string) (int64, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID string) (*FollowResult, error) {
	if followerID == followingID {
		return nil, apperror.SelfFollow()
	}

	follower, err := s.userRepo.GetUserByID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	following, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return nil, err
	}

	edge := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	// the unique pair index settles concurrent follows; losing the race reads as "already following"
	created, err := s.followRepo.Create(ctx, edge)
	if err != nil {
		return nil, err
	}

	result := &FollowResult{
		Follower:  follower,
		Following: following,
		Created:   created,
	}
	if created {
		result.Edge = edge
	}

	return result, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.followRepo.Delete(ctx, followerID, followingID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followingID)
}

func (s *followService) Followers(ctx context.Context, userID string) ([]*models.Follow, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *followService) Following(ctx context.Context, userID string) ([]*models.Follow, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID)
}

func (s *followService) FollowersCount(ctx context.Context, userID string) (int64, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *followService) FollowingCount(ctx context.Context, userID string) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}
