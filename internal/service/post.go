package service

import (
	"github.com/pawtime-dev/pawtime/internal/authz"
	"github.com/pawtime-dev/pawtime/internal/domain"
	"github.com/pawtime-dev/pawtime/internal/logger"
	"github.com/pawtime-dev/pawtime/internal/validation"
)

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.Post, error)
	GetPost(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error)
	GetPosts(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error)
	PostOwner(id domain.PostId) (domain.UserId, error)
	UpdatePost(id domain.PostId, data domain.PostUpdateData) error
	DeletePost(id domain.PostId) error
}

type Post struct {
	storage   PostStorage
	validator validation.PostValidator
}

func NewPost(storage PostStorage) *Post {
	return &Post{storage: storage}
}

func (s *Post) Create(identity domain.Identity, data domain.PostCreationData) (domain.Post, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return domain.Post{}, err
	}
	if err := s.validator.Content(data.Content); err != nil {
		return domain.Post{}, err
	}

	data.Author = identity.UserId
	post, err := s.storage.CreatePost(data)
	if err != nil {
		return domain.Post{}, err
	}
	logger.Log.Info("post created", "post_id", post.Id, "board_id", post.BoardId, "author_id", identity.UserId)
	return post, nil
}

// Get bumps the view counter as a side effect and reports whether the
// viewer has liked the post. An anonymous viewer has id 0 and never matches
// a like row.
func (s *Post) Get(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error) {
	return s.storage.GetPost(id, viewer)
}

func (s *Post) List(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error) {
	return s.storage.GetPosts(boardId, keyword, page)
}

func (s *Post) Update(identity domain.Identity, id domain.PostId, data domain.PostUpdateData) error {
	if data.Title != nil {
		if err := s.validator.Title(*data.Title); err != nil {
			return err
		}
	}
	if data.Content != nil {
		if err := s.validator.Content(*data.Content); err != nil {
			return err
		}
	}

	owner, err := s.storage.PostOwner(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(identity, owner); err != nil {
		return err
	}
	return s.storage.UpdatePost(id, data)
}

func (s *Post) Delete(identity domain.Identity, id domain.PostId) error {
	owner, err := s.storage.PostOwner(id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(identity, owner); err != nil {
		return err
	}
	if err := s.storage.DeletePost(id); err != nil {
		return err
	}
	logger.Log.Info("post deleted", "post_id", id, "actor_id", identity.UserId)
	return nil
}
