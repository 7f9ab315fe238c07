package service

import (
	"github.com/pawtime-dev/pawtime/internal/authz"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/validation"
)

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData) (domain.Comment, error)
	CommentOwner(id domain.CommentId) (domain.UserId, domain.PostId, error)
	UpdateComment(id domain.CommentId, content string) error
	DeleteComment(id domain.CommentId) error
	GetComments(page domain.PageRequest) ([]domain.Comment, error)
	GetCommentsByPost(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error)
	GetCommentsByUser(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error)
}

type Comment struct {
	storage   CommentStorage
	validator validation.CommentValidator
}

func NewComment(storage CommentStorage) *Comment {
	return &Comment{storage: storage}
}

func (s *Comment) Create(identity domain.Identity, data domain.CommentCreationData) (domain.Comment, error) {
	if err := s.validator.Content(data.Content); err != nil {
		return domain.Comment{}, err
	}
	data.Author = identity.UserId
	return s.storage.CreateComment(data)
}

// authorize resolves the comment and checks both the route's claimed parent
// post and the caller's right to mutate it.
func (s *Comment) authorize(identity domain.Identity, id domain.CommentId, postId domain.PostId) error {
	owner, parent, err := s.storage.CommentOwner(id)
	if err != nil {
		return err
	}
	if parent != postId {
		return internal_errors.New(internal_errors.Invalid, "Comment does not belong to the specified post")
	}
	return authz.Authorize(identity, owner)
}

func (s *Comment) Update(identity domain.Identity, id domain.CommentId, postId domain.PostId, content string) error {
	if err := s.validator.Content(content); err != nil {
		return err
	}
	if err := s.authorize(identity, id, postId); err != nil {
		return err
	}
	return s.storage.UpdateComment(id, content)
}

func (s *Comment) Delete(identity domain.Identity, id domain.CommentId, postId domain.PostId) error {
	if err := s.authorize(identity, id, postId); err != nil {
		return err
	}
	return s.storage.DeleteComment(id)
}

func (s *Comment) List(page domain.PageRequest) ([]domain.Comment, error) {
	return s.storage.GetComments(page)
}

func (s *Comment) ListByPost(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error) {
	return s.storage.GetCommentsByPost(postId, page)
}

func (s *Comment) ListByUser(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error) {
	return s.storage.GetCommentsByUser(userId, page)
}
