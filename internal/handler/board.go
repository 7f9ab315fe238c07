package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeValidate[api.CreateBoardRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	boardType, ok := domain.ParseBoardType(req.BoardType)
	if !ok {
		h.writeError(w, internal_errors.Newf(internal_errors.Invalid, "Unknown board type: %s", req.BoardType))
		return
	}

	board, err := h.boards.Create(domain.BoardCreationData{
		Title:       req.Title,
		Description: req.Description,
		Type:        boardType,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, api.StatusCreate, "Board created", api.BoardFrom(board))
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boards.List(h.parsePageRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]api.BoardResponse, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, api.BoardFrom(b))
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Boards fetched", resp)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "boardId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	board, err := h.boards.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Board fetched", api.BoardFrom(board))
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "boardId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	req, err := DecodeValidate[api.UpdateBoardRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = h.boards.Update(id, domain.BoardUpdateData{Title: req.Title, Description: req.Description})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusUpdate, "Board updated", nil)
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "boardId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.boards.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusDelete, "Board deleted", nil)
}
