package api

import (
	"time"

	"github.com/pawtime-dev/pawtime/internal/domain"
)

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nick     string `json:"nick" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	BoardType   string `json:"board_type" validate:"required"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreatePostRequest struct {
	BoardId int64  `json:"board_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	Token string `json:"token"`
}

type BoardResponse struct {
	Id            int64     `json:"board_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	BoardType     string    `json:"board_type"`
	AllowComments bool      `json:"allow_comments"`
	AllowReports  bool      `json:"allow_reports"`
	CreatedAt     time.Time `json:"created_at"`
}

func BoardFrom(b domain.Board) BoardResponse {
	return BoardResponse{
		Id:            b.Id,
		Title:         b.Title,
		Description:   b.Description,
		BoardType:     string(b.Type),
		AllowComments: b.Capabilities.AllowComments,
		AllowReports:  b.Capabilities.AllowReports,
		CreatedAt:     b.CreatedAt,
	}
}

type PostListItemResponse struct {
	Id         int64     `json:"post_id"`
	BoardId    int64     `json:"board_id"`
	Title      string    `json:"title"`
	AuthorId   int64     `json:"author_id"`
	AuthorNick string    `json:"author_nick"`
	Likes      int64     `json:"likes"`
	Views      int64     `json:"views"`
	CreatedAt  time.Time `json:"created_at"`
}

func PostListItemFrom(p domain.Post) PostListItemResponse {
	return PostListItemResponse{
		Id:         p.Id,
		BoardId:    p.BoardId,
		Title:      p.Title,
		AuthorId:   p.Author.Id,
		AuthorNick: p.Author.Nick,
		Likes:      p.Likes,
		Views:      p.Views,
		CreatedAt:  p.CreatedAt,
	}
}

type PostDetailResponse struct {
	PostListItemResponse
	Content     string    `json:"content"`
	ContentHtml string    `json:"content_html"`
	LikedByMe   bool      `json:"liked_by_me"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentResponse struct {
	Id         int64     `json:"comment_id"`
	PostId     int64     `json:"post_id"`
	AuthorId   int64     `json:"author_id"`
	AuthorNick string    `json:"author_nick"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func CommentFrom(c domain.Comment) CommentResponse {
	return CommentResponse{
		Id:         c.Id,
		PostId:     c.PostId,
		AuthorId:   c.Author.Id,
		AuthorNick: c.Author.Nick,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type ProfileImgResponse struct {
	UserId int64  `json:"user_id"`
	Url    string `json:"url"`
}
