package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
	"socialCPT/internal/repository"
	"socialCPT/internal/storage"
)

type PostService interface {
	Create(ctx context.Context, authorID, caption string, imageURL *string) (*models.Post, error)
	Update(ctx context.Context, postID, callerID string, upd models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, postID, callerID string) error
	GetEnriched(ctx context.Context, postID string, viewer *models.User) (*models.PostView, error)
	Feed(ctx context.Context, viewer *models.User) ([]*models.PostView, error)
	UserPosts(ctx context.Context, email string, viewer *models.User) ([]*models.PostView, error)
}

type postService struct {
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository
	storage     storage.Storage
	log         logrus.FieldLogger
}

func NewPostService(rep *repository.Repository, store storage.Storage, log logrus.FieldLogger) PostService {
	return &postService{
		postRepo:    rep.Post,
		userRepo:    rep.User,
		likeRepo:    rep.Like,
		commentRepo: rep.Comment,
		followRepo:  rep.Follow,
		storage:     store,
		log:         log,
	}
}

func (p *postService) Create(ctx context.Context, authorID, caption string, imageURL *string) (*models.Post, error) {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return nil, apperror.Validation("Caption is required")
	}

	post := &models.Post{
		AuthorID: authorID,
		Caption:  caption,
		ImageURL: normalizeURL(imageURL),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update applies only the fields present in upd.
func (p *postService) Update(ctx context.Context, postID, callerID string, upd models.PostUpdate) (*models.Post, error) {
	post, err := p.ownedPost(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}

	if upd.Caption != nil {
		caption := strings.TrimSpace(*upd.Caption)
		if caption == "" {
			return nil, apperror.Validation("Caption cannot be blank")
		}
		post.Caption = caption
	}
	if upd.ImageURL != nil {
		post.ImageURL = normalizeURL(upd.ImageURL)
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) Delete(ctx context.Context, postID, callerID string) error {
	post, err := p.ownedPost(ctx, postID, callerID)
	if err != nil {
		return err
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	p.removeStoredImage(ctx, post)
	return nil
}

func (p *postService) GetEnriched(ctx context.Context, postID string, viewer *models.User) (*models.PostView, error) {
	post, err := p.postRepo.GetWithAuthor(ctx, postID)
	if err != nil {
		return nil, err
	}
	return p.enrich(ctx, post, viewer)
}

func (p *postService) Feed(ctx context.Context, viewer *models.User) ([]*models.PostView, error) {
	posts, err := p.postRepo.ListWithAuthor(ctx)
	if err != nil {
		return nil, err
	}
	return p.enrichAll(ctx, posts, viewer)
}

func (p *postService) UserPosts(ctx context.Context, email string, viewer *models.User) ([]*models.PostView, error) {
	author, err := p.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	posts, err := p.postRepo.ListByAuthor(ctx, author.UserID)
	if err != nil {
		return nil, err
	}
	return p.enrichAll(ctx, posts, viewer)
}

// TODO: batch the per-post counters into one grouped query once the feed is paginated.
func (p *postService) enrichAll(ctx context.Context, posts []*models.PostWithAuthor, viewer *models.User) ([]*models.PostView, error) {
	views := make([]*models.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := p.enrich(ctx, post, viewer)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (p *postService) enrich(ctx context.Context, post *models.PostWithAuthor, viewer *models.User) (*models.PostView, error) {
	likeCount, err := p.likeRepo.CountForPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	commentCount, err := p.commentRepo.CountForPost(ctx, post.PostID)
	if err != nil {
		return nil, err
	}

	view := &models.PostView{
		ID:           post.PostID,
		AuthorID:     post.AuthorID,
		Username:     post.AuthorUsername,
		UserEmail:    post.AuthorEmail,
		Caption:      post.Caption,
		ImageURL:     post.ImageURL,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}

	if viewer == nil {
		return view, nil
	}

	view.LikedByCurrentUser, err = p.likeRepo.Exists(ctx, post.PostID, viewer.UserID)
	if err != nil {
		return nil, err
	}

	view.FollowingAuthor, err = p.followRepo.Exists(ctx, viewer.UserID, post.AuthorID)
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (p *postService) ownedPost(ctx context.Context, postID, callerID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, apperror.Forbidden("You can only modify your own posts")
	}
	return post, nil
}

// removeStoredImage drops the object behind a deleted post's image when it
// lives in our bucket. Failures are logged, the post is already gone.
func (p *postService) removeStoredImage(ctx context.Context, post *models.Post) {
	if p.storage == nil || post.ImageURL == nil {
		return
	}

	objectName, ok := p.storage.ObjectNameFromURL(*post.ImageURL)
	if !ok {
		return
	}

	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		p.log.WithFields(logrus.Fields{
			"post_id": post.PostID,
			"object":  objectName,
			"error":   err.Error(),
		}).Warn("Failed to delete post image from storage")
	}
}

func normalizeURL(u *string) *string {
	if u == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*u)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
