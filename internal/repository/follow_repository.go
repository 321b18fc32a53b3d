package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge unless the pair already exists. The returned flag
// reports whether a new row was written.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) (bool, error) {
	if follow.FollowID == "" {
		follow.FollowID = uuid.New().String()
	}
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO follows (follow_id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, follow.FollowID, follow.FollowerID, follow.FollowingID, follow.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case checkViolation:
				return false, apperror.SelfFollow()
			case foreignKeyViolation, invalidTextRepresentation:
				return false, apperror.NotFound("User not found")
			}
		}
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check inserted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		if isInvalidID(err) {
			return nil
		}
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, followerID, followingID); err != nil {
		if isInvalidID(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]*models.Follow, error) {
	follows := []*models.Follow{}

	query := `
		SELECT follow_id, follower_id, following_id, created_at
		FROM follows
		WHERE following_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &follows, query, userID); err != nil {
		if isInvalidID(err) {
			return follows, nil
		}
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return follows, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID string) ([]*models.Follow, error) {
	follows := []*models.Follow{}

	query := `
		SELECT follow_id, follower_id, following_id, created_at
		FROM follows
		WHERE follower_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &follows, query, userID); err != nil {
		if isInvalidID(err) {
			return follows, nil
		}
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return follows, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID); err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID); err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return count, nil
}
