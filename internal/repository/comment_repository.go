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

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (comment_id, post_id, author_id, content, created_at, updated_at)
		VALUES (:comment_id, :post_id, :author_id, :content, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		if isInvalidID(err) {
			return apperror.NotFound("Post not found")
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment

	query := `
		SELECT comment_id, post_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE comment_id = $1
	`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	comment.UpdatedAt = time.Now()

	query := `
		UPDATE comments SET content = :content, updated_at = :updated_at
		WHERE comment_id = :comment_id
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if isInvalidID(err) {
			return apperror.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("Comment not found")
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		if isInvalidID(err) {
			return apperror.NotFound("Comment not found")
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("Comment not found")
	}

	return nil
}

func (r *commentRepository) ListForPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	comments := []*models.Comment{}

	query := `
		SELECT comment_id, post_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		if isInvalidID(err) {
			return comments, nil
		}
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	var count int64

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID); err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}
