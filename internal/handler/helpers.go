package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes the JSON body into T and runs struct validation.
func DecodeValidate[T any](r *http.Request) (T, error) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return payload, internal_errors.New(internal_errors.Invalid, "Invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return payload, internal_errors.Newf(internal_errors.Invalid, "Validation failed: %s", err.Error())
	}
	return payload, nil
}

func parseIdParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.Newf(internal_errors.Invalid, "Invalid %s", name)
	}
	return id, nil
}

// parsePageRequest reads page/size/sort/direction query params, applying the
// configured defaults and clamping size to the configured maximum.
func (h *Handler) parsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()

	page := domain.PageRequest{
		Number:    0,
		Size:      h.cfg.Public.DefaultPageSize,
		SortBy:    q.Get("sort"),
		Direction: q.Get("direction"),
	}

	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 0 {
		page.Number = n
	}
	if s, err := strconv.Atoi(q.Get("size")); err == nil && s > 0 {
		page.Size = s
	}
	if page.Size > h.cfg.Public.MaxPageSize {
		page.Size = h.cfg.Public.MaxPageSize
	}
	return page
}
