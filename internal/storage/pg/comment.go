package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The parent post must be ACTIVE and its board must permit comments.
	// The board's own status is intentionally not consulted here.
	var allowComments bool
	err = tx.QueryRow(`
        SELECT b.allow_comments
        FROM posts p
        JOIN boards b ON b.board_id = p.board_id
        WHERE p.post_id = $1 AND p.status = $2
    `, data.PostId, domain.StatusActive).Scan(&allowComments)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, internal_errors.New(internal_errors.NotFound, "Post not found")
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to validate post: %w", err)
	}
	if !allowComments {
		return domain.Comment{}, internal_errors.New(internal_errors.Invalid, "Comments are not allowed on this board")
	}

	var c domain.Comment
	c.PostId = data.PostId
	c.Content = data.Content
	err = tx.QueryRow(`
        INSERT INTO comments (post_id, author_id, content)
        VALUES ($1, $2, $3)
        RETURNING comment_id, status, created, updated
    `, data.PostId, data.Author, data.Content).Scan(&c.Id, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	err = tx.QueryRow("SELECT user_id, nick FROM users WHERE user_id = $1", data.Author).
		Scan(&c.Author.Id, &c.Author.Nick)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to resolve comment author: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Comment{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return c, nil
}

// CommentOwner resolves ownership and parent post of an ACTIVE comment.
func (s *Storage) CommentOwner(id domain.CommentId) (domain.UserId, domain.PostId, error) {
	var owner domain.UserId
	var postId domain.PostId
	err := s.db.QueryRow(
		"SELECT author_id, post_id FROM comments WHERE comment_id = $1 AND status = $2",
		id, domain.StatusActive,
	).Scan(&owner, &postId)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, internal_errors.New(internal_errors.NotFound, "Comment not found")
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to resolve comment owner: %w", err)
	}
	return owner, postId, nil
}

func (s *Storage) UpdateComment(id domain.CommentId, content string) error {
	res, err := s.db.Exec(`
        UPDATE comments SET content = $2, updated = now()
        WHERE comment_id = $1 AND status = $3
    `, id, content, domain.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if affected == 0 {
		return internal_errors.New(internal_errors.NotFound, "Comment not found")
	}
	return nil
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	return s.softDelete("comments", "comment_id", id, "Comment")
}

const commentSelect = `
    SELECT c.comment_id, c.post_id, c.author_id, u.nick, c.content, c.status, c.created, c.updated
    FROM comments c
    JOIN users u ON u.user_id = c.author_id
`

func (s *Storage) GetComments(page domain.PageRequest) ([]domain.Comment, error) {
	rows, err := s.db.Query(commentSelect+`
        WHERE c.status = $1
        ORDER BY c.created DESC
        LIMIT $2 OFFSET $3
    `, domain.StatusActive, page.Size, page.Number*page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return scanComments(rows)
}

func (s *Storage) GetCommentsByPost(postId domain.PostId, page domain.PageRequest) ([]domain.Comment, error) {
	rows, err := s.db.Query(commentSelect+`
        WHERE c.status = $1 AND c.post_id = $2
        ORDER BY c.created DESC
        LIMIT $3 OFFSET $4
    `, domain.StatusActive, postId, page.Size, page.Number*page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}
	return scanComments(rows)
}

func (s *Storage) GetCommentsByUser(userId domain.UserId, page domain.PageRequest) ([]domain.Comment, error) {
	rows, err := s.db.Query(commentSelect+`
        WHERE c.status = $1 AND c.author_id = $2
        ORDER BY c.created DESC
        LIMIT $3 OFFSET $4
    `, domain.StatusActive, userId, page.Size, page.Number*page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list user comments: %w", err)
	}
	return scanComments(rows)
}

func scanComments(rows *sql.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.Id, &c.PostId, &c.Author.Id, &c.Author.Nick,
			&c.Content, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
