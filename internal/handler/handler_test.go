package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialCPT/internal/apperror"
	"socialCPT/internal/config"
	"socialCPT/internal/models"
	"socialCPT/internal/service"
)

type testEnv struct {
	auth     *MockAuthService
	users    *MockUserService
	follows  *MockFollowService
	likes    *MockLikeService
	comments *MockCommentService
	posts    *MockPostService
	images   *MockImageService
	tables   *MockTablesService
	hook     *test.Hook
	handlers *Handlers
	router   *mux.Router
}

func newTestEnv() *testEnv {
	logger, hook := test.NewNullLogger()
	env := &testEnv{
		auth:     new(MockAuthService),
		users:    new(MockUserService),
		follows:  new(MockFollowService),
		likes:    new(MockLikeService),
		comments: new(MockCommentService),
		posts:    new(MockPostService),
		images:   new(MockImageService),
		tables:   new(MockTablesService),
		hook:     hook,
	}

	env.handlers = &Handlers{
		AuthService:    env.auth,
		UserService:    env.users,
		FollowService:  env.follows,
		LikeService:    env.likes,
		CommentService: env.comments,
		PostService:    env.posts,
		ImageService:   env.images,
		TablesService:  env.tables,
		Cfg:            &config.Config{MaxUploadSize: 1 << 20},
		Validate:       newValidator(),
		Log:            logger,
	}
	env.router = mux.NewRouter()
	env.handlers.RegisterRoutes(env.router)
	return env
}

// do sends a request through the router, optionally as user.
func (e *testEnv) do(method, path string, body interface{}, user *models.User) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req = req.WithContext(WithCurrentUser(req.Context(), user))
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) assertExpectations(t *testing.T) {
	e.auth.AssertExpectations(t)
	e.users.AssertExpectations(t)
	e.follows.AssertExpectations(t)
	e.likes.AssertExpectations(t)
	e.comments.AssertExpectations(t)
	e.posts.AssertExpectations(t)
	e.images.AssertExpectations(t)
	e.tables.AssertExpectations(t)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func testUser(id, email string) *models.User {
	return &models.User{
		UserID:    id,
		Username:  "user-" + id,
		Email:     email,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewHandlers(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := &service.Service{
		Auth:    new(MockAuthService),
		User:    new(MockUserService),
		Follow:  new(MockFollowService),
		Like:    new(MockLikeService),
		Comment: new(MockCommentService),
		Post:    new(MockPostService),
		Image:   new(MockImageService),
		Tables:  new(MockTablesService),
	}

	h := NewHandlers(svc, &config.Config{}, logger)

	assert.NotNil(t, h.AuthService)
	assert.NotNil(t, h.UserService)
	assert.NotNil(t, h.FollowService)
	assert.NotNil(t, h.LikeService)
	assert.NotNil(t, h.CommentService)
	assert.NotNil(t, h.PostService)
	assert.NotNil(t, h.ImageService)
	assert.NotNil(t, h.TablesService)
	assert.NotNil(t, h.Cfg)
	assert.NotNil(t, h.Validate)
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"not found", apperror.NotFound("Post not found"), http.StatusNotFound, "Post not found"},
		{"unauthorized", apperror.Unauthorized("bad credentials"), http.StatusUnauthorized, "bad credentials"},
		{"malformed token", apperror.MalformedToken("token has no subject"), http.StatusUnauthorized, "token has no subject"},
		{"forbidden", apperror.Forbidden("You can only edit your own posts"), http.StatusForbidden, "You can only edit your own posts"},
		{"validation", apperror.Validation("caption is required"), http.StatusBadRequest, "caption is required"},
		{"self follow", apperror.SelfFollow(), http.StatusBadRequest, "Cannot follow yourself"},
		{"conflict", apperror.Conflict("Email already exists"), http.StatusConflict, "Email already exists"},
		{"storage disabled", service.ErrStorageDisabled, http.StatusServiceUnavailable, "Image storage is not available"},
		{"bare sentinel", apperror.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, GenericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := httptest.NewRequest(http.MethodGet, "/api/posts/1", nil)
			rr := httptest.NewRecorder()

			env.handlers.writeAppError(rr, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, http.StatusText(tt.expectedStatus), body.Error)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.Equal(t, "/api/posts/1", body.Path)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestWriteAppError_LogsUnexpectedErrors(t *testing.T) {
	env := newTestEnv()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)

	env.handlers.writeAppError(httptest.NewRecorder(), req, errors.New("pq: connection refused"))

	entry := env.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "pq: connection refused", entry.Data["error"])
}

func TestWriteAppError_WarnsOnForbidden(t *testing.T) {
	env := newTestEnv()
	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)

	env.handlers.writeAppError(httptest.NewRecorder(), req, apperror.Forbidden("You can only delete your own posts"))

	entry := env.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
}

func TestDecodeAndValidate(t *testing.T) {
	env := newTestEnv()

	t.Run("invalid JSON", func(t *testing.T) {
		rr := env.do(http.MethodPost, "/api/auth/login", "{not json", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rr)["message"])
	})

	t.Run("field names come from JSON tags", func(t *testing.T) {
		rr := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email", "password": "x"}, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "email must be a valid email address", decodeBody(t, rr)["message"])
	})
}

func TestNewValidator_OptionalURL(t *testing.T) {
	v := newValidator()
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{name: "absent", value: nil},
		{name: "empty", value: ptr("")},
		{name: "blank", value: ptr("   ")},
		{name: "valid", value: ptr("https://cdn.example.com/a.png")},
		{name: "malformed", value: ptr("nope"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&UpdatePostRequest{ImageURL: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.com", normalizeEmail("  Alice@X.com "))
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv()

	rr := env.do(http.MethodGet, "/api/nothing-here", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Resource not found", decodeBody(t, rr)["message"])

	rr = env.do(http.MethodPatch, "/api/posts", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method not allowed", decodeBody(t, rr)["message"])

	rr = env.do(http.MethodGet, "/api/posts/p1/like/toggle", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = env.do(http.MethodPost, "/health", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHomeHandler(t *testing.T) {
	env := newTestEnv()

	rr := env.do(http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody(t, rr)["status"])
}

func TestRequireUser_Anonymous(t *testing.T) {
	env := newTestEnv()

	rr := env.do(http.MethodGet, "/api/me", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "You must be logged in", decodeBody(t, rr)["message"])
}

func TestCurrentUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := CurrentUser(req.Context())
	assert.False(t, ok)

	user := testUser("u1", "a@x.com")
	got, ok := CurrentUser(WithCurrentUser(req.Context(), user))
	assert.True(t, ok)
	assert.Same(t, user, got)

	_, ok = CurrentUser(WithCurrentUser(req.Context(), nil))
	assert.False(t, ok)
}
