package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

// ToggleLike flips the viewer's like on the post and returns the
// resulting state plus the total like count.
func (s *Storage) ToggleLike(postId domain.PostId, userId domain.UserId) (bool, int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status domain.Status
	err = tx.QueryRow("SELECT status FROM posts WHERE post_id = $1", postId).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && status.Deleted()) {
		return false, 0, internal_errors.New(internal_errors.NotFound, "Post not found")
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to check post: %w", err)
	}

	res, err := tx.Exec(`
        INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
        ON CONFLICT (post_id, user_id) DO NOTHING
    `, postId, userId)
	if err != nil {
		return false, 0, fmt.Errorf("failed to insert like: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("failed to insert like: %w", err)
	}

	liked := inserted > 0
	if !liked {
		if _, err := tx.Exec(
			"DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2",
			postId, userId,
		); err != nil {
			return false, 0, fmt.Errorf("failed to remove like: %w", err)
		}
	}

	var count int64
	err = tx.QueryRow("SELECT count(*) FROM post_likes WHERE post_id = $1", postId).Scan(&count)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return liked, count, nil
}
