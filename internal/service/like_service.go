package service

import (
	"context"

	"socialCPT/internal/models"
	"socialCPT/internal/repository"
)

type LikeService interface {
	Like(ctx context.Context, postID, userID string) (*models.Like, error)
	Unlike(ctx context.Context, postID, userID string) error
	Toggle(ctx context.Context, postID, userID string) (*models.Like, bool, error)
	CountForPost(ctx context.Context, postID string) (int64, error)
	IsLikedBy(ctx context.Context, postID, userID string) (bool, error)
	ListForPost(ctx context.Context, postID string) ([]*models.Like, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) LikeService {
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Like returns the stored edge, creating it only when the pair is new.
func (s *likeService) Like(ctx context.Context, postID, userID string) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	like := &models.Like{PostID: postID, UserID: userID}

	created, err := s.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}
	if created {
		return like, nil
	}

	return s.likeRepo.Get(ctx, postID, userID)
}

func (s *likeService) Unlike(ctx context.Context, postID, userID string) error {
	_, err := s.likeRepo.Delete(ctx, postID, userID)
	return err
}

// Toggle flips the like state. The flag reports the state after the call.
func (s *likeService) Toggle(ctx context.Context, postID, userID string) (*models.Like, bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, false, err
	}

	removed, err := s.likeRepo.Delete(ctx, postID, userID)
	if err != nil {
		return nil, false, err
	}
	if removed {
		return nil, false, nil
	}

	like, err := s.Like(ctx, postID, userID)
	if err != nil {
		return nil, false, err
	}

	return like, true, nil
}

func (s *likeService) CountForPost(ctx context.Context, postID string) (int64, error) {
	return s.likeRepo.CountForPost(ctx, postID)
}

func (s *likeService) IsLikedBy(ctx context.Context, postID, userID string) (bool, error) {
	return s.likeRepo.Exists(ctx, postID, userID)
}

func (s *likeService) ListForPost(ctx context.Context, postID string) ([]*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListForPost(ctx, postID)
}
