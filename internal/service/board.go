package service

import (
	"github.com/pawtime-dev/pawtime/internal/domain"
	"github.com/pawtime-dev/pawtime/internal/logger"
	"github.com/pawtime-dev/pawtime/internal/validation"
)

type BoardStorage interface {
	CreateBoard(data domain.BoardCreationData, caps domain.Capabilities) (domain.Board, error)
	GetBoard(id domain.BoardId) (domain.Board, error)
	GetBoards(page domain.PageRequest) ([]domain.Board, error)
	UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error
	DeleteBoard(id domain.BoardId) error
}

// Board management is admin-only; the router enforces the role, so the
// service takes no identity.
type Board struct {
	storage   BoardStorage
	validator validation.BoardValidator
}

func NewBoard(storage BoardStorage) *Board {
	return &Board{storage: storage}
}

func (s *Board) Create(data domain.BoardCreationData) (domain.Board, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return domain.Board{}, err
	}
	if err := s.validator.Description(data.Description); err != nil {
		return domain.Board{}, err
	}

	board, err := s.storage.CreateBoard(data, data.Type.Capabilities())
	if err != nil {
		return domain.Board{}, err
	}
	logger.Log.Info("board created", "board_id", board.Id, "type", board.Type)
	return board, nil
}

func (s *Board) Get(id domain.BoardId) (domain.Board, error) {
	return s.storage.GetBoard(id)
}

func (s *Board) List(page domain.PageRequest) ([]domain.Board, error) {
	return s.storage.GetBoards(page)
}

func (s *Board) Update(id domain.BoardId, data domain.BoardUpdateData) error {
	if data.Title != nil {
		if err := s.validator.Title(*data.Title); err != nil {
			return err
		}
	}
	if data.Description != nil {
		if err := s.validator.Description(*data.Description); err != nil {
			return err
		}
	}
	return s.storage.UpdateBoard(id, data)
}

// Delete hides the board from listings. Posts under it stay reachable by
// direct id.
func (s *Board) Delete(id domain.BoardId) error {
	if err := s.storage.DeleteBoard(id); err != nil {
		return err
	}
	logger.Log.Info("board deleted", "board_id", id)
	return nil
}
