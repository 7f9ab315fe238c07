package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func TestBoardCreateDerivesCapabilities(t *testing.T) {
	tests := []struct {
		boardType domain.BoardType
		want      domain.Capabilities
	}{
		{domain.BoardTypeGeneral, domain.Capabilities{AllowComments: true, AllowReports: true}},
		{domain.BoardTypeNotice, domain.Capabilities{AllowComments: false, AllowReports: false}},
		{domain.BoardTypeQna, domain.Capabilities{AllowComments: true, AllowReports: false}},
	}
	for _, tt := range tests {
		t.Run(string(tt.boardType), func(t *testing.T) {
			var gotCaps domain.Capabilities
			storage := &mockBoardStorage{
				CreateBoardFunc: func(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error) {
					gotCaps = caps
					return domain.Board{Id: 1, Title: data.Title, Type: data.Type, Capabilities: caps}, nil
				},
			}
			svc := NewBoard(storage)

			_, err := svc.Create(domain.BoardCreationData{Title: "Cats", Type: tt.boardType})
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotCaps)
		})
	}
}

func TestBoardCreateValidation(t *testing.T) {
	svc := NewBoard(&mockBoardStorage{})

	_, err := svc.Create(domain.BoardCreationData{Title: "   ", Type: domain.BoardTypeGeneral})
	assert.True(t, internal_errors.IsKind(err, internal_errors.Invalid))
}

func TestBoardUpdatePartialValidation(t *testing.T) {
	called := false
	storage := &mockBoardStorage{
		UpdateBoardFunc: func(id domain.BoardId, data domain.BoardUpdateData) error {
			called = true
			return nil
		},
	}
	svc := NewBoard(storage)

	t.Run("nil fields skip validation", func(t *testing.T) {
		require.NoError(t, svc.Update(1, domain.BoardUpdateData{}))
		assert.True(t, called)
	})

	t.Run("present empty title rejected", func(t *testing.T) {
		empty := ""
		err := svc.Update(1, domain.BoardUpdateData{Title: &empty})
		assert.True(t, internal_errors.IsKind(err, internal_errors.Invalid))
	})
}

func TestBoardDeletePropagatesConflict(t *testing.T) {
	storage := &mockBoardStorage{
		DeleteBoardFunc: func(id domain.BoardId) error {
			return internal_errors.New(internal_errors.Conflict, "Board is already deleted")
		},
	}
	svc := NewBoard(storage)

	err := svc.Delete(1)
	assert.True(t, internal_errors.IsKind(err, internal_errors.Conflict))
}
