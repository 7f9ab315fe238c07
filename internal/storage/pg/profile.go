package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func (s *Storage) ProfileImg(userId domain.UserId) (domain.ProfileImg, error) {
	var img domain.ProfileImg
	err := s.db.QueryRow(
		"SELECT user_id, url, updated FROM profile_images WHERE user_id = $1",
		userId,
	).Scan(&img.UserId, &img.Url, &img.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ProfileImg{}, internal_errors.New(internal_errors.NotFound, "User not found")
	}
	if err != nil {
		return domain.ProfileImg{}, fmt.Errorf("failed to get profile image: %w", err)
	}
	return img, nil
}

func (s *Storage) UpdateProfileImgUrl(userId domain.UserId, url string) error {
	res, err := s.db.Exec(
		"UPDATE profile_images SET url = $2, updated = now() WHERE user_id = $1",
		userId, url,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if affected == 0 {
		return internal_errors.New(internal_errors.NotFound, "User not found")
	}
	return nil
}
