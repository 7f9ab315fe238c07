package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func TestToggleLike(t *testing.T) {
	user := mustUser(t)
	board := mustBoard(t, domain.BoardTypeGeneral)
	post := mustPost(t, board.Id, user)

	t.Run("toggle on then off", func(t *testing.T) {
		liked, count, err := storage.ToggleLike(post.Id, user)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(1), count)

		liked, count, err = storage.ToggleLike(post.Id, user)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, int64(0), count)
	})

	t.Run("counts are per post", func(t *testing.T) {
		second := mustUser(t)
		third := mustUser(t)

		_, _, err := storage.ToggleLike(post.Id, second)
		require.NoError(t, err)
		_, count, err := storage.ToggleLike(post.Id, third)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("deleted post rejects likes", func(t *testing.T) {
		doomed := mustPost(t, board.Id, user)
		require.NoError(t, storage.DeletePost(doomed.Id))

		_, _, err := storage.ToggleLike(doomed.Id, user)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("missing post", func(t *testing.T) {
		_, _, err := storage.ToggleLike(999999, user)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
