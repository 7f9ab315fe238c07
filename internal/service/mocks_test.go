package service

import (
	"context"
	"io"

	"github.com/pawtime-dev/pawtime/internal/domain"
)

type mockUserStorage struct {
	SaveUserFunc func(email domain.Email, nick string, passHash []byte) (domain.UserId, error)
	UserFunc     func(email domain.Email) (domain.User, error)
	UserByIdFunc func(id domain.UserId) (domain.User, error)
}

func (m *mockUserStorage) SaveUser(email domain.Email, nick string, passHash []byte) (domain.UserId, error) {
	return m.SaveUserFunc(email, nick, passHash)
}
func (m *mockUserStorage) User(email domain.Email) (domain.User, error) {
	return m.UserFunc(email)
}
func (m *mockUserStorage) UserById(id domain.UserId) (domain.User, error) {
	return m.UserByIdFunc(id)
}

type mockBoardStorage struct {
	CreateBoardFunc func(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error)
	GetBoardFunc    func(id domain.BoardId) (domain.Board, error)
	GetBoardsFunc   func(page domain.PageRequest) ([]domain.Board, error)
	UpdateBoardFunc func(id domain.BoardId, data domain.BoardUpdateData) error
	DeleteBoardFunc func(id domain.BoardId) error
}

func (m *mockBoardStorage) CreateBoard(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error) {
	return m.CreateBoardFunc(data, caps)
}
func (m *mockBoardStorage) GetBoard(id domain.BoardId) (domain.Board, error) {
	return m.GetBoardFunc(id)
}
func (m *mockBoardStorage) GetBoards(page domain.PageRequest) ([]domain.Board, error) {
	return m.GetBoardsFunc(page)
}
func (m *mockBoardStorage) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error {
	return m.UpdateBoardFunc(id, data)
}
func (m *mockBoardStorage) DeleteBoard(id domain.BoardId) error {
	return m.DeleteBoardFunc(id)
}

type mockPostStorage struct {
	CreatePostFunc func(data domain.PostCreationData) (domain.Post, error)
	GetPostFunc    func(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error)
	GetPostsFunc   func(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error)
	PostOwnerFunc  func(id domain.PostId) (domain.UserId, error)
	UpdatePostFunc func(id domain.PostId, data domain.PostUpdateData) error
	DeletePostFunc func(id domain.PostId) error
}

func (m *mockPostStorage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	return m.CreatePostFunc(data)
}
func (m *mockPostStorage) GetPost(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error) {
	return m.GetPostFunc(id, viewer)
}
func (m *mockPostStorage) GetPosts(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error) {
	return m.GetPostsFunc(boardId, keyword, page)
}
func (m *mockPostStorage) PostOwner(id domain.PostId) (domain.UserId, error) {
	return m.PostOwnerFunc(id)
}
func (m *mockPostStorage) UpdatePost(id domain.PostId, data domain.PostUpdateData) error {
	return m.UpdatePostFunc(id, data)
}
func (m *mockPostStorage) DeletePost(id domain.PostId) error {
	return m.DeletePostFunc(id)
}

type mockCommentStorage struct {
	CreateCommentFunc     func(data domain.CommentCreationData) (domain.Comment, error)
	CommentOwnerFunc      func(id domain.CommentId) (domain.UserId, domain.PostId, error)
	UpdateCommentFunc     func(id domain.CommentId, content string) error
	DeleteCommentFunc     func(id domain.CommentId) error
	GetCommentsFunc       func(page domain.PageRequest) ([]domain.Comment, error)
	GetCommentsByPostFunc func(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error)
	GetCommentsByUserFunc func(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error)
}

func (m *mockCommentStorage) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	return m.CreateCommentFunc(data)
}
func (m *mockCommentStorage) CommentOwner(id domain.CommentId) (domain.UserId, domain.PostId, error) {
	return m.CommentOwnerFunc(id)
}
func (m *mockCommentStorage) UpdateComment(id domain.CommentId, content string) error {
	return m.UpdateCommentFunc(id, content)
}
func (m *mockCommentStorage) DeleteComment(id domain.CommentId) error {
	return m.DeleteCommentFunc(id)
}
func (m *mockCommentStorage) GetComments(page domain.PageRequest) ([]domain.Comment, error) {
	return m.GetCommentsFunc(page)
}
func (m *mockCommentStorage) GetCommentsByPost(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error) {
	return m.GetCommentsByPostFunc(postId, page)
}
func (m *mockCommentStorage) GetCommentsByUser(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error) {
	return m.GetCommentsByUserFunc(userId, page)
}

type mockProfileImgStorage struct {
	ProfileImgFunc          func(userId domain.UserId) (domain.ProfileImg, error)
	UpdateProfileImgUrlFunc func(userId domain.UserId, url string) error
}

func (m *mockProfileImgStorage) ProfileImg(userId domain.UserId) (domain.ProfileImg, error) {
	return m.ProfileImgFunc(userId)
}
func (m *mockProfileImgStorage) UpdateProfileImgUrl(userId domain.UserId, url string) error {
	return m.UpdateProfileImgUrlFunc(userId, url)
}

type mockMediaStorage struct {
	UploadFunc func(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, url string) error
}

func (m *mockMediaStorage) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	return m.UploadFunc(ctx, reader, size, contentType)
}
func (m *mockMediaStorage) Delete(ctx context.Context, url string) error {
	return m.DeleteFunc(ctx, url)
}

type mockJwt struct {
	NewTokenFunc     func(user domain.User) (string, error)
	AuthenticateFunc func(credential string) (domain.Identity, error)
}

func (m *mockJwt) NewToken(user domain.User) (string, error) {
	return m.NewTokenFunc(user)
}
func (m *mockJwt) Authenticate(credential string) (domain.Identity, error) {
	return m.AuthenticateFunc(credential)
}
