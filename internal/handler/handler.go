package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"socialCPT/internal/config"
	"socialCPT/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	FollowService  service.FollowService
	LikeService    service.LikeService
	CommentService service.CommentService
	PostService    service.PostService
	ImageService   service.ImageService
	TablesService  service.TablesService
	Cfg            *config.Config
	Validate       *validator.Validate
	Log            logrus.FieldLogger
}

func NewHandlers(svc *service.Service, cfg *config.Config, log logrus.FieldLogger) *Handlers {
	return &Handlers{
		AuthService:    svc.Auth,
		UserService:    svc.User,
		FollowService:  svc.Follow,
		LikeService:    svc.Like,
		CommentService: svc.Comment,
		PostService:    svc.Post,
		ImageService:   svc.Image,
		TablesService:  svc.Tables,
		Cfg:            cfg,
		Validate:       newValidator(),
		Log:            log,
	}
}

// newValidator reports field names as they appear in JSON bodies.
//
// optional_url accepts a blank string, which clears an image on update.
// Anything else must pass the url rule.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("optional_url", func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		return value == "" || v.Var(value, "url") == nil
	})
	return v
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
