package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

// SaveUser inserts a new user together with the default profile image row.
func (s *Storage) SaveUser(email domain.Email, nick string, passHash []byte) (domain.UserId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id domain.UserId
	err = tx.QueryRow(`
        INSERT INTO users (email, nick, pass_hash)
        VALUES ($1, $2, $3)
        RETURNING user_id
    `, email, nick, passHash).Scan(&id)
	if isUniqueViolation(err) {
		return 0, internal_errors.New(internal_errors.Conflict, "User with this email or nick already exists")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO profile_images (user_id, url) VALUES ($1, $2)",
		id, s.cfg.Public.DefaultProfileImg,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert profile image: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *Storage) User(email domain.Email) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(`
        SELECT user_id, email, nick, pass_hash, role, created
        FROM users WHERE email = $1
    `, email).Scan(&u.Id, &u.Email, &u.Nick, &u.PassHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.New(internal_errors.NotFound, "User not found")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(`
        SELECT user_id, email, nick, pass_hash, role, created
        FROM users WHERE user_id = $1
    `, id).Scan(&u.Id, &u.Email, &u.Nick, &u.PassHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, internal_errors.New(internal_errors.NotFound, "User not found")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
