package service

import (
	"github.com/pawtime-dev/pawtime/internal/domain"
)

type LikeStorage interface {
	ToggleLike(postId domain.PostId, userId domain.UserId) (bool, int64, error)
}

type Like struct {
	storage LikeStorage
}

func NewLike(storage LikeStorage) *Like {
	return &Like{storage: storage}
}

// Toggle likes the post if the caller hasn't, and unlikes it otherwise.
// Returns the resulting state and the new total.
func (s *Like) Toggle(identity domain.Identity, postId domain.PostId) (bool, int64, error) {
	return s.storage.ToggleLike(postId, identity.UserId)
}
