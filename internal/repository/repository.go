package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialCPT/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)
	UpdateProfilePhoto(ctx context.Context, userID, photoURL string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetWithAuthor(ctx context.Context, postID string) (*models.PostWithAuthor, error)
	ListWithAuthor(ctx context.Context) ([]*models.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.PostWithAuthor, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) (bool, error)
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	ListFollowers(ctx context.Context, userID string) ([]*models.Follow, error)
	ListFollowing(ctx context.Context, userID string) ([]*models.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) (bool, error)
	Get(ctx context.Context, postID, userID string) (*models.Like, error)
	Delete(ctx context.Context, postID, userID string) (bool, error)
	Exists(ctx context.Context, postID, userID string) (bool, error)
	ListForPost(ctx context.Context, postID string) ([]*models.Like, error)
	CountForPost(ctx context.Context, postID string) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID string) error
	ListForPost(ctx context.Context, postID string) ([]*models.Comment, error)
	CountForPost(ctx context.Context, postID string) (int64, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Follow  FollowRepository
	Like    LikeRepository
	Comment CommentRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Follow:  NewFollowRepository(db),
		Like:    NewLikeRepository(db),
		Comment: NewCommentRepository(db),
		Tables:  NewTablesRepository(db),
	}
}

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// isInvalidID reports that postgres rejected an id that is not a valid uuid.
// No row can match such an id.
func isInvalidID(err error) bool {
	return hasCode(err, invalidTextRepresentation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
