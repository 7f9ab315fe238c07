package pg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func TestCreateBoard(t *testing.T) {
	t.Run("capabilities are stored", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeNotice)
		assert.False(t, board.Capabilities.AllowComments)
		assert.False(t, board.Capabilities.AllowReports)
		assert.Equal(t, domain.StatusActive, board.Status)
	})

	t.Run("duplicate title conflicts", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeGeneral)

		_, err := storage.CreateBoard(
			domain.BoardCreationData{Title: board.Title, Type: domain.BoardTypeGeneral},
			domain.BoardTypeGeneral.Capabilities(),
		)
		assert.True(t, internal_errors.IsKind(err, internal_errors.Conflict))
	})
}

func TestGetBoard(t *testing.T) {
	board := mustBoard(t, domain.BoardTypeQna)

	t.Run("active board", func(t *testing.T) {
		got, err := storage.GetBoard(board.Id)
		require.NoError(t, err)
		assert.Equal(t, board.Title, got.Title)
		assert.Equal(t, domain.BoardTypeQna, got.Type)
		assert.True(t, got.Capabilities.AllowComments)
		assert.False(t, got.Capabilities.AllowReports)
	})

	t.Run("missing board", func(t *testing.T) {
		_, err := storage.GetBoard(999999)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("deleted board reads as missing", func(t *testing.T) {
		doomed := mustBoard(t, domain.BoardTypeGeneral)
		require.NoError(t, storage.DeleteBoard(doomed.Id))

		_, err := storage.GetBoard(doomed.Id)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestUpdateBoard(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeGeneral)

		newTitle := generateString(t) + "-renamed"
		require.NoError(t, storage.UpdateBoard(board.Id, domain.BoardUpdateData{Title: &newTitle}))

		got, err := storage.GetBoard(board.Id)
		require.NoError(t, err)
		assert.Equal(t, newTitle, got.Title)
		assert.Equal(t, board.Description, got.Description)
	})

	t.Run("deleted board rejects update", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeGeneral)
		require.NoError(t, storage.DeleteBoard(board.Id))

		newTitle := generateString(t)
		err := storage.UpdateBoard(board.Id, domain.BoardUpdateData{Title: &newTitle})
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("duplicate title conflicts", func(t *testing.T) {
		a := mustBoard(t, domain.BoardTypeGeneral)
		b := mustBoard(t, domain.BoardTypeGeneral)

		err := storage.UpdateBoard(b.Id, domain.BoardUpdateData{Title: &a.Title})
		assert.True(t, internal_errors.IsKind(err, internal_errors.Conflict))
	})
}

func TestDeleteBoard(t *testing.T) {
	t.Run("missing board", func(t *testing.T) {
		err := storage.DeleteBoard(999999)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("second delete conflicts", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeGeneral)
		require.NoError(t, storage.DeleteBoard(board.Id))

		err := storage.DeleteBoard(board.Id)
		assert.True(t, internal_errors.IsKind(err, internal_errors.Conflict))
	})

	t.Run("concurrent deletes have exactly one winner", func(t *testing.T) {
		board := mustBoard(t, domain.BoardTypeGeneral)

		const workers = 8
		errs := make([]error, workers)
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				errs[i] = storage.DeleteBoard(board.Id)
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.True(t, internal_errors.IsKind(err, internal_errors.Conflict))
			}
		}
		assert.Equal(t, 1, winners)
	})
}

func TestGetBoards(t *testing.T) {
	active := mustBoard(t, domain.BoardTypeGeneral)
	deleted := mustBoard(t, domain.BoardTypeGeneral)
	require.NoError(t, storage.DeleteBoard(deleted.Id))

	boards, err := storage.GetBoards(domain.PageRequest{Number: 0, Size: 1000})
	require.NoError(t, err)

	ids := make(map[domain.BoardId]bool)
	for _, b := range boards {
		ids[b.Id] = true
	}
	assert.True(t, ids[active.Id])
	assert.False(t, ids[deleted.Id])
}
