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

const postWithAuthorSelect = `
	SELECT p.post_id, p.author_id, p.caption, p.image_url, p.created_at, p.updated_at,
	       u.username AS author_username, u.email AS author_email
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, caption, image_url, created_at, updated_at)
        VALUES
        (:post_id, :author_id, :caption, :image_url, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT post_id, author_id, caption, image_url, created_at, updated_at
        FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetWithAuthor(ctx context.Context, postID string) (*models.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE p.post_id = $1`

	var post models.PostWithAuthor
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ListWithAuthor(ctx context.Context) ([]*models.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` ORDER BY p.created_at DESC`

	posts := []*models.PostWithAuthor{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	posts := []*models.PostWithAuthor{}
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts of user %s: %w", authorID, err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			caption = :caption,
			image_url = :image_url,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isInvalidID(err) {
			return apperror.NotFound("Post not found")
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("Post not found")
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		if isInvalidID(err) {
			return apperror.NotFound("Post not found")
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("Post not found")
	}

	return nil
}
