package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/config"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/handler"
	"github.com/pawtime-dev/pawtime/internal/jwt"
	"github.com/pawtime-dev/pawtime/internal/middleware"
	"github.com/pawtime-dev/pawtime/internal/router"
	"github.com/pawtime-dev/pawtime/internal/service"
)

// storageStub implements every storage interface the services need, with
// overridable hooks for the methods a test exercises.
type storageStub struct {
	GetPostsFunc      func(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error)
	GetPostFunc       func(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error)
	CreatePostFunc    func(data domain.PostCreationData) (domain.Post, error)
	PostOwnerFunc     func(id domain.PostId) (domain.UserId, error)
	DeletePostFunc    func(id domain.PostId) error
	CreateBoardFunc   func(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error)
	CreateCommentFunc func(data domain.CommentCreationData) (domain.Comment, error)
	ToggleLikeFunc    func(postId domain.PostId, userId domain.UserId) (bool, int64, error)
}

func (s *storageStub) SaveUser(email domain.Email, nick string, passHash []byte) (domain.UserId, error) {
	return 1, nil
}
func (s *storageStub) User(email domain.Email) (domain.User, error) {
	return domain.User{}, internal_errors.New(internal_errors.NotFound, "User not found")
}
func (s *storageStub) UserById(id domain.UserId) (domain.User, error) {
	return domain.User{}, internal_errors.New(internal_errors.NotFound, "User not found")
}

func (s *storageStub) CreateBoard(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error) {
	return s.CreateBoardFunc(data, caps)
}
func (s *storageStub) GetBoard(id domain.BoardId) (domain.Board, error) {
	return domain.Board{}, internal_errors.New(internal_errors.NotFound, "Board not found")
}
func (s *storageStub) GetBoards(page domain.PageRequest) ([]domain.Board, error) {
	return nil, nil
}
func (s *storageStub) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error {
	return nil
}
func (s *storageStub) DeleteBoard(id domain.BoardId) error { return nil }

func (s *storageStub) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	return s.CreatePostFunc(data)
}
func (s *storageStub) GetPost(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error) {
	return s.GetPostFunc(id, viewer)
}
func (s *storageStub) GetPosts(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error) {
	return s.GetPostsFunc(boardId, keyword, page)
}
func (s *storageStub) PostOwner(id domain.PostId) (domain.UserId, error) {
	return s.PostOwnerFunc(id)
}
func (s *storageStub) UpdatePost(id domain.PostId, data domain.PostUpdateData) error { return nil }
func (s *storageStub) DeletePost(id domain.PostId) error {
	return s.DeletePostFunc(id)
}

func (s *storageStub) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	return s.CreateCommentFunc(data)
}
func (s *storageStub) CommentOwner(id domain.CommentId) (domain.UserId, domain.PostId, error) {
	return 0, 0, internal_errors.New(internal_errors.NotFound, "Comment not found")
}
func (s *storageStub) UpdateComment(id domain.CommentId, content string) error { return nil }
func (s *storageStub) DeleteComment(id domain.CommentId) error                 { return nil }
func (s *storageStub) GetComments(page domain.PageRequest) ([]domain.Comment, error) {
	return nil, nil
}
func (s *storageStub) GetCommentsByPost(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error) {
	return nil, nil
}
func (s *storageStub) GetCommentsByUser(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error) {
	return nil, nil
}

func (s *storageStub) ToggleLike(postId domain.PostId, userId domain.UserId) (bool, int64, error) {
	return s.ToggleLikeFunc(postId, userId)
}

func (s *storageStub) ProfileImg(userId domain.UserId) (domain.ProfileImg, error) {
	return domain.ProfileImg{UserId: userId, Url: "http://cdn.test/profile/default.png"}, nil
}
func (s *storageStub) UpdateProfileImgUrl(userId domain.UserId, url string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			Port:              8080,
			DefaultPageSize:   20,
			MaxPageSize:       100,
			MaxImageBytes:     1 << 20,
			MaxImageDimension: 512,
			DefaultProfileImg: "http://cdn.test/profile/default.png",
		},
		Private: config.Private{JwtKey: "test-secret"},
	}
}

type testServer struct {
	*httptest.Server
	jwt jwt.Service
}

func newTestServer(t *testing.T, storage *storageStub) *testServer {
	t.Helper()

	cfg := testConfig()
	jwtService := jwt.New(cfg.JwtKey(), time.Hour)

	h := handler.New(
		service.NewAuth(storage, jwtService, 4),
		service.NewBoard(storage),
		service.NewPost(storage),
		service.NewComment(storage),
		service.NewLike(storage),
		service.NewProfile(storage, nil, cfg.Public.DefaultProfileImg, cfg.Public.MaxImageBytes, cfg.Public.MaxImageDimension),
		cfg,
	)

	srv := httptest.NewServer(router.New(h, middleware.NewAuth(jwtService), cfg))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, jwt: jwtService}
}

func (s *testServer) tokenFor(t *testing.T, id domain.UserId, role domain.Role) string {
	t.Helper()
	token, err := s.jwt.NewToken(domain.User{Id: id, Role: role})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, api.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope api.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestAnonymousCanReadPosts(t *testing.T) {
	storage := &storageStub{
		GetPostsFunc: func(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error) {
			return []domain.Post{{Id: 1, BoardId: 2, Title: "Hello", Author: domain.User{Id: 3, Nick: "whiskers"}}}, nil
		},
	}
	srv := newTestServer(t, storage)

	resp, envelope := srv.do(t, "GET", "/v1/posts", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.StatusSuccess, envelope.Status)
	assert.NotNil(t, envelope.Data)
}

func TestMutationRequiresCredential(t *testing.T) {
	srv := newTestServer(t, &storageStub{})

	payload := map[string]any{"board_id": 1, "title": "Hello", "content": "body"}

	t.Run("missing token", func(t *testing.T) {
		resp, envelope := srv.do(t, "POST", "/v1/posts", "", payload)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, api.StatusUnauthorized, envelope.Status)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, envelope := srv.do(t, "POST", "/v1/posts", "garbage", payload)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, api.StatusUnauthorized, envelope.Status)
	})
}

func TestCreatePost(t *testing.T) {
	storage := &storageStub{
		CreatePostFunc: func(data domain.PostCreationData) (domain.Post, error) {
			return domain.Post{Id: 10, BoardId: data.BoardId, Title: data.Title, Content: data.Content,
				Author: domain.User{Id: data.Author, Nick: "whiskers"}}, nil
		},
	}
	srv := newTestServer(t, storage)
	token := srv.tokenFor(t, 3, domain.RoleUser)

	resp, envelope := srv.do(t, "POST", "/v1/posts", token,
		map[string]any{"board_id": 2, "title": "Hello", "content": "**bold** body"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, api.StatusCreate, envelope.Status)

	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(10), data["post_id"])
	assert.Contains(t, data["content_html"], "<strong>bold</strong>")
}

func TestCreatePostInvalidBody(t *testing.T) {
	srv := newTestServer(t, &storageStub{})
	token := srv.tokenFor(t, 3, domain.RoleUser)

	resp, envelope := srv.do(t, "POST", "/v1/posts", token, map[string]any{"board_id": 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, api.StatusInvalid, envelope.Status)
}

func TestGetPostNotFound(t *testing.T) {
	storage := &storageStub{
		GetPostFunc: func(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error) {
			return domain.Post{}, false, internal_errors.New(internal_errors.NotFound, "Post not found")
		},
	}
	srv := newTestServer(t, storage)

	resp, envelope := srv.do(t, "GET", "/v1/posts/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, api.StatusNotFound, envelope.Status)
	assert.Equal(t, "Post not found", envelope.Message)
}

func TestDeletePostEnvelope(t *testing.T) {
	storage := &storageStub{
		PostOwnerFunc:  func(id domain.PostId) (domain.UserId, error) { return 3, nil },
		DeletePostFunc: func(id domain.PostId) error { return nil },
	}
	srv := newTestServer(t, storage)
	token := srv.tokenFor(t, 3, domain.RoleUser)

	resp, envelope := srv.do(t, "DELETE", "/v1/posts/10", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.StatusDelete, envelope.Status)
}

func TestDoubleDeleteConflict(t *testing.T) {
	storage := &storageStub{
		PostOwnerFunc: func(id domain.PostId) (domain.UserId, error) { return 3, nil },
		DeletePostFunc: func(id domain.PostId) error {
			return internal_errors.New(internal_errors.Conflict, "Post is already deleted")
		},
	}
	srv := newTestServer(t, storage)
	token := srv.tokenFor(t, 3, domain.RoleUser)

	resp, envelope := srv.do(t, "DELETE", "/v1/posts/10", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, api.StatusConflict, envelope.Status)
}

func TestBoardManagementAdminOnly(t *testing.T) {
	storage := &storageStub{
		CreateBoardFunc: func(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error) {
			return domain.Board{Id: 1, Title: data.Title, Type: data.Type, Capabilities: caps}, nil
		},
	}
	srv := newTestServer(t, storage)
	payload := map[string]any{"title": "Notices", "board_type": "NOTICE"}

	t.Run("regular user forbidden", func(t *testing.T) {
		token := srv.tokenFor(t, 3, domain.RoleUser)
		resp, envelope := srv.do(t, "POST", "/v1/admin/boards", token, payload)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, api.StatusForbidden, envelope.Status)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token := srv.tokenFor(t, 1, domain.RoleAdmin)
		resp, envelope := srv.do(t, "POST", "/v1/admin/boards", token, payload)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, api.StatusCreate, envelope.Status)

		data := envelope.Data.(map[string]any)
		assert.Equal(t, false, data["allow_comments"])
	})

	t.Run("unknown board type", func(t *testing.T) {
		token := srv.tokenFor(t, 1, domain.RoleAdmin)
		resp, envelope := srv.do(t, "POST", "/v1/admin/boards", token,
			map[string]any{"title": "Weird", "board_type": "SECRET"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, api.StatusInvalid, envelope.Status)
	})
}

func TestCommentOnClosedBoard(t *testing.T) {
	storage := &storageStub{
		CreateCommentFunc: func(data domain.CommentCreationData) (domain.Comment, error) {
			return domain.Comment{}, internal_errors.New(internal_errors.Invalid, "Comments are not allowed on this board")
		},
	}
	srv := newTestServer(t, storage)
	token := srv.tokenFor(t, 3, domain.RoleUser)

	resp, envelope := srv.do(t, "POST", "/v1/posts/10/comments", token, map[string]any{"content": "hi"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, api.StatusInvalid, envelope.Status)
	assert.Equal(t, "Comments are not allowed on this board", envelope.Message)
}

func TestToggleLike(t *testing.T) {
	liked := false
	storage := &storageStub{
		ToggleLikeFunc: func(postId domain.PostId, userId domain.UserId) (bool, int64, error) {
			liked = !liked
			count := int64(0)
			if liked {
				count = 1
			}
			return liked, count, nil
		},
	}
	srv := newTestServer(t, storage)
	token := srv.tokenFor(t, 3, domain.RoleUser)

	_, envelope := srv.do(t, "POST", "/v1/posts/10/like", token, nil)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, true, data["liked"])
	assert.Equal(t, float64(1), data["likes"])

	_, envelope = srv.do(t, "POST", "/v1/posts/10/like", token, nil)
	data = envelope.Data.(map[string]any)
	assert.Equal(t, false, data["liked"])
	assert.Equal(t, float64(0), data["likes"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &storageStub{})

	resp, envelope := srv.do(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.StatusSuccess, envelope.Status)
}
