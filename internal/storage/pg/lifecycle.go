package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

// softDelete flips an entity to DELETED. The status read and write happen in
// a single UPDATE, so of two concurrent deletes at most one can win; the
// loser observes zero affected rows and is told why.
func (s *Storage) softDelete(table, idColumn string, id int64, entity string) error {
	res, err := s.db.Exec(
		fmt.Sprintf("UPDATE %s SET status = $1 WHERE %s = $2 AND status = $3", table, idColumn),
		domain.StatusDeleted, id, domain.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing transitioned: either the row never existed or it is already
	// DELETED (including losing a concurrent delete race).
	var status domain.Status
	err = s.db.QueryRow(
		fmt.Sprintf("SELECT status FROM %s WHERE %s = $1", table, idColumn), id,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return internal_errors.Newf(internal_errors.NotFound, "%s not found", entity)
	}
	if err != nil {
		return fmt.Errorf("failed to check %s status: %w", entity, err)
	}
	return internal_errors.Newf(internal_errors.Conflict, "%s is already deleted", entity)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return false
}
