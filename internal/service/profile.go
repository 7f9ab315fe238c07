package service

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/pawtime-dev/pawtime/internal/authz"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/logger"
	"github.com/pawtime-dev/pawtime/internal/validation"
)

type ProfileImgStorage interface {
	ProfileImg(userId domain.UserId) (domain.ProfileImg, error)
	UpdateProfileImgUrl(userId domain.UserId, url string) error
}

// MediaStorage is the object store holding the image bytes. The database
// keeps only the public URL.
type MediaStorage interface {
	Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

type Profile struct {
	storage      ProfileImgStorage
	media        MediaStorage
	defaultUrl   string
	maxBytes     int64
	maxDimension int
}

func NewProfile(storage ProfileImgStorage, media MediaStorage, defaultUrl string, maxBytes int64, maxDimension int) *Profile {
	return &Profile{
		storage:      storage,
		media:        media,
		defaultUrl:   defaultUrl,
		maxBytes:     maxBytes,
		maxDimension: maxDimension,
	}
}

func (s *Profile) Get(userId domain.UserId) (domain.ProfileImg, error) {
	return s.storage.ProfileImg(userId)
}

// Update replaces the user's profile image. Only the user themselves or an
// admin may do so. The previous object is removed best-effort after the URL
// swap commits; a failed removal leaves an orphan object, never a broken URL.
func (s *Profile) Update(ctx context.Context, identity domain.Identity, userId domain.UserId, fileHeader *multipart.FileHeader) (domain.ProfileImg, error) {
	if err := authz.Authorize(identity, userId); err != nil {
		return domain.ProfileImg{}, err
	}

	prev, err := s.storage.ProfileImg(userId)
	if err != nil {
		return domain.ProfileImg{}, err
	}

	contentType, err := validation.ValidateProfileImage(fileHeader, s.maxBytes, s.maxDimension)
	if err != nil {
		return domain.ProfileImg{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.ProfileImg{}, internal_errors.New(internal_errors.Invalid, "Can't open uploaded file")
	}
	defer file.Close()

	url, err := s.media.Upload(ctx, file, fileHeader.Size, contentType)
	if err != nil {
		logger.Log.Error("profile image upload failed", "user_id", userId, "error", err)
		return domain.ProfileImg{}, internal_errors.New(internal_errors.Internal, "Can't store image")
	}

	if err := s.storage.UpdateProfileImgUrl(userId, url); err != nil {
		s.media.Delete(ctx, url)
		return domain.ProfileImg{}, err
	}

	s.removeObject(ctx, prev.Url)
	return s.storage.ProfileImg(userId)
}

// Delete resets the user's image to the configured default.
func (s *Profile) Delete(ctx context.Context, identity domain.Identity, userId domain.UserId) error {
	if err := authz.Authorize(identity, userId); err != nil {
		return err
	}

	prev, err := s.storage.ProfileImg(userId)
	if err != nil {
		return err
	}

	if err := s.storage.UpdateProfileImgUrl(userId, s.defaultUrl); err != nil {
		return err
	}
	s.removeObject(ctx, prev.Url)
	return nil
}

func (s *Profile) removeObject(ctx context.Context, url string) {
	if url == "" || url == s.defaultUrl {
		return
	}
	if err := s.media.Delete(ctx, url); err != nil {
		logger.Log.Warn("failed to remove old profile image", "url", url, "error", err)
	}
}
