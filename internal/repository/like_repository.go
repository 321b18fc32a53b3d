package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create records the like unless (user, post) is already present.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) (bool, error) {
	if like.LikeID == "" {
		like.LikeID = uuid.New().String()
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO likes (like_id, user_id, post_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, like.LikeID, like.UserID, like.PostID, like.CreatedAt)
	if err != nil {
		if isInvalidID(err) {
			return false, apperror.NotFound("Post not found")
		}
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) Get(ctx context.Context, postID, userID string) (*models.Like, error) {
	var like models.Like

	query := `
		SELECT like_id, user_id, post_id, created_at
		FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	err := r.db.GetContext(ctx, &like, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, apperror.NotFound("Like not found")
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, postID, userID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, postID, userID); err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *likeRepository) ListForPost(ctx context.Context, postID string) ([]*models.Like, error) {
	likes := []*models.Like{}

	query := `
		SELECT like_id, user_id, post_id, created_at
		FROM likes
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &likes, query, postID); err != nil {
		if isInvalidID(err) {
			return likes, nil
		}
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return likes, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID); err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
