package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func (s *Storage) CreateBoard(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error) {
	b := domain.Board{
		Title:        data.Title,
		Description:  data.Description,
		Type:         data.Type,
		Capabilities: caps,
	}
	err := s.db.QueryRow(`
        INSERT INTO boards (title, description, board_type, allow_comments, allow_reports)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING board_id, status, created
    `, data.Title, data.Description, data.Type, caps.AllowComments, caps.AllowReports).
		Scan(&b.Id, &b.Status, &b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Board{}, internal_errors.New(internal_errors.Conflict, "Board with this title already exists")
		}
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}
	return b, nil
}

// GetBoard resolves an ACTIVE board. Missing and soft-deleted boards are the
// same from the caller's point of view.
func (s *Storage) GetBoard(id domain.BoardId) (domain.Board, error) {
	var b domain.Board
	err := s.db.QueryRow(`
        SELECT board_id, title, description, board_type, allow_comments, allow_reports, status, created
        FROM boards
        WHERE board_id = $1 AND status = $2
    `, id, domain.StatusActive).Scan(
		&b.Id, &b.Title, &b.Description, &b.Type,
		&b.Capabilities.AllowComments, &b.Capabilities.AllowReports, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Board{}, internal_errors.New(internal_errors.NotFound, "Board not found")
	}
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to get board: %w", err)
	}
	return b, nil
}

func (s *Storage) GetBoards(page domain.PageRequest) ([]domain.Board, error) {
	rows, err := s.db.Query(`
        SELECT board_id, title, description, board_type, allow_comments, allow_reports, status, created
        FROM boards
        WHERE status = $1
        ORDER BY created DESC
        LIMIT $2 OFFSET $3
    `, domain.StatusActive, page.Size, page.Number*page.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(
			&b.Id, &b.Title, &b.Description, &b.Type,
			&b.Capabilities.AllowComments, &b.Capabilities.AllowReports, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return boards, nil
}

// UpdateBoard applies a partial update. Nil fields keep their prior value.
func (s *Storage) UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var status domain.Status
	err = tx.QueryRow("SELECT status FROM boards WHERE board_id = $1 FOR UPDATE", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.New(internal_errors.NotFound, "Board not found")
	}
	if err != nil {
		return fmt.Errorf("failed to lock board: %w", err)
	}
	if status.Deleted() {
		return internal_errors.New(internal_errors.NotFound, "Board not found")
	}

	_, err = tx.Exec(`
        UPDATE boards
        SET title = COALESCE($2, title), description = COALESCE($3, description)
        WHERE board_id = $1
    `, id, data.Title, data.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.New(internal_errors.Conflict, "Board with this title already exists")
		}
		return fmt.Errorf("failed to update board: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) DeleteBoard(id domain.BoardId) error {
	return s.softDelete("boards", "board_id", id, "Board")
}
