package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// A post can only be created in an ACTIVE board context.
	var boardId domain.BoardId
	err = tx.QueryRow(
		"SELECT board_id FROM boards WHERE board_id = $1 AND status = $2",
		data.BoardId, domain.StatusActive,
	).Scan(&boardId)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Post{}, internal_errors.New(internal_errors.NotFound, "Board not found")
	}
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to validate board: %w", err)
	}

	p := domain.Post{
		BoardId: data.BoardId,
		Title:   data.Title,
		Content: data.Content,
	}
	err = tx.QueryRow(`
        INSERT INTO posts (board_id, author_id, title, content)
        VALUES ($1, $2, $3, $4)
        RETURNING post_id, status, created, updated
    `, data.BoardId, data.Author, data.Title, data.Content).
		Scan(&p.Id, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	err = tx.QueryRow("SELECT user_id, nick FROM users WHERE user_id = $1", data.Author).
		Scan(&p.Author.Id, &p.Author.Nick)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to resolve post author: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// GetPost returns the detail view of an ACTIVE post and bumps its view
// counter in the same statement. viewer is 0 for anonymous callers.
func (s *Storage) GetPost(id domain.PostId, viewer domain.UserId) (domain.Post, bool, error) {
	var p domain.Post
	var likedByMe bool
	err := s.db.QueryRow(`
        WITH bumped AS (
            UPDATE posts SET views = views + 1
            WHERE post_id = $1 AND status = $2
            RETURNING post_id, board_id, author_id, title, content, views, status, created, updated
        )
        SELECT
            b.post_id, b.board_id, b.author_id, u.nick, b.title, b.content,
            b.views, b.status, b.created, b.updated,
            (SELECT count(*) FROM post_likes pl WHERE pl.post_id = b.post_id),
            EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = b.post_id AND pl.user_id = $3)
        FROM bumped b
        JOIN users u ON u.user_id = b.author_id
    `, id, domain.StatusActive, viewer).Scan(
		&p.Id, &p.BoardId, &p.Author.Id, &p.Author.Nick, &p.Title, &p.Content,
		&p.Views, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.Likes, &likedByMe,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Post{}, false, internal_errors.New(internal_errors.NotFound, "Post not found")
	}
	if err != nil {
		return domain.Post{}, false, fmt.Errorf("failed to get post: %w", err)
	}
	return p, likedByMe, nil
}

var postSortColumns = map[string]string{
	"":          "p.created",
	"created":   "p.created",
	"createdAt": "p.created",
	"views":     "p.views",
	"title":     "p.title",
	"likes":     "likes",
}

// GetPosts lists ACTIVE posts, optionally filtered by board and keyword.
// boardId 0 means all boards.
func (s *Storage) GetPosts(boardId domain.BoardId, keyword string, page domain.PageRequest) ([]domain.Post, error) {
	sortColumn, ok := postSortColumns[page.SortBy]
	if !ok {
		return nil, internal_errors.Newf(internal_errors.Invalid, "Unknown sort field: %s", page.SortBy)
	}
	direction := "DESC"
	if page.Direction == "asc" || page.Direction == "ASC" {
		direction = "ASC"
	}

	rows, err := s.db.Query(fmt.Sprintf(`
        SELECT
            p.post_id, p.board_id, p.author_id, u.nick, p.title,
            p.views, p.status, p.created, p.updated,
            (SELECT count(*) FROM post_likes pl WHERE pl.post_id = p.post_id) AS likes
        FROM posts p
        JOIN users u ON u.user_id = p.author_id
        WHERE p.status = $1
          AND ($2 = 0 OR p.board_id = $2)
          AND ($3 = '' OR p.title ILIKE '%%' || $3 || '%%' OR p.content ILIKE '%%' || $3 || '%%')
        ORDER BY %s %s
        LIMIT $4 OFFSET $5
    `, sortColumn, direction), domain.StatusActive, boardId, keyword, page.Size, page.Number*page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.Id, &p.BoardId, &p.Author.Id, &p.Author.Nick, &p.Title,
			&p.Views, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.Likes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostOwner resolves ownership of an ACTIVE post for authorization.
// Missing and soft-deleted posts both surface as NotFound: deleted content
// is not addressable for further mutation.
func (s *Storage) PostOwner(id domain.PostId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRow(
		"SELECT author_id FROM posts WHERE post_id = $1 AND status = $2",
		id, domain.StatusActive,
	).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, internal_errors.New(internal_errors.NotFound, "Post not found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve post owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) UpdatePost(id domain.PostId, data domain.PostUpdateData) error {
	res, err := s.db.Exec(`
        UPDATE posts
        SET title = COALESCE($2, title), content = COALESCE($3, content), updated = now()
        WHERE post_id = $1 AND status = $4
    `, id, data.Title, data.Content, domain.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if affected == 0 {
		return internal_errors.New(internal_errors.NotFound, "Post not found")
	}
	return nil
}

func (s *Storage) DeletePost(id domain.PostId) error {
	return s.softDelete("posts", "post_id", id, "Post")
}
