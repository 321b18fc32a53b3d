package service

import (
	"context"
	"strings"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
	"socialCPT/internal/repository"
)

type CommentService interface {
	Add(ctx context.Context, postID, authorID, text string) (*models.Comment, error)
	Update(ctx context.Context, postID, commentID, callerID, text string) (*models.Comment, error)
	Delete(ctx context.Context, postID, commentID, callerID string) error
	ListForPost(ctx context.Context, postID string) ([]*models.Comment, error)
	CountForPost(ctx context.Context, postID string) (int64, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) Add(ctx context.Context, postID, authorID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation("Comment text is required")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByID(ctx, authorID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Update(ctx context.Context, postID, commentID, callerID, text string) (*models.Comment, error) {
	comment, err := s.ownedComment(ctx, postID, commentID, callerID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.Validation("Comment text is required")
	}

	comment.Content = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID, callerID string) error {
	if _, err := s.ownedComment(ctx, postID, commentID, callerID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}

func (s *commentService) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListForPost(ctx, postID)
}

func (s *commentService) CountForPost(ctx context.Context, postID string) (int64, error) {
	return s.commentRepo.CountForPost(ctx, postID)
}

// ownedComment loads the comment and checks it sits under postID and
// belongs to callerID. Ownership is decided before any content checks.
func (s *commentService) ownedComment(ctx context.Context, postID, commentID, callerID string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, apperror.NotFound("Comment not found")
	}
	if comment.AuthorID != callerID {
		return nil, apperror.Forbidden("You can only modify your own comments")
	}
	return comment, nil
}
