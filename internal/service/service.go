package service

import (
	"github.com/sirupsen/logrus"

	"socialCPT/internal/repository"
	"socialCPT/internal/storage"
)

type Service struct {
	Token   TokenService
	Auth    AuthService
	User    UserService
	Follow  FollowService
	Like    LikeService
	Comment CommentService
	Post    PostService
	Image   ImageService
	Tables  TablesService
}

// NewService wires the services over rep. store may be nil when object
// storage is disabled; image uploads then report ErrStorageDisabled.
func NewService(rep *repository.Repository, tokens TokenService, store storage.Storage, db HealthChecker, log logrus.FieldLogger) *Service {
	return &Service{
		Token:   tokens,
		Auth:    NewAuthService(rep.User, tokens),
		User:    NewUserService(rep.User),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Like:    NewLikeService(rep.Like, rep.Post, rep.User),
		Comment: NewCommentService(rep.Comment, rep.Post, rep.User),
		Post:    NewPostService(rep, store, log),
		Image:   NewImageService(store),
		Tables:  NewTablesService(rep.Tables, db),
	}
}
