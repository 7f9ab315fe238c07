package api

import (
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

// Status is the label carried in every response envelope.
type Status string

const (
	StatusSuccess      Status = "SUCCESS"
	StatusCreate       Status = "CREATE"
	StatusUpdate       Status = "UPDATE"
	StatusDelete       Status = "DELETE"
	StatusInvalid      Status = "INVALID"
	StatusUnauthorized Status = "UNAUTHORIZED"
	StatusForbidden    Status = "FORBIDDEN"
	StatusNotFound     Status = "NOTFOUND"
	StatusConflict     Status = "CONFLICT"
	StatusError        Status = "ERROR"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  Status      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// statusForKind is total over the error taxonomy. A kind outside the closed
// set ends up as StatusError via the Internal default in KindOf.
func statusForKind(kind internal_errors.Kind) Status {
	switch kind {
	case internal_errors.Unauthenticated:
		return StatusUnauthorized
	case internal_errors.Forbidden:
		return StatusForbidden
	case internal_errors.NotFound:
		return StatusNotFound
	case internal_errors.Invalid:
		return StatusInvalid
	case internal_errors.Conflict:
		return StatusConflict
	default:
		return StatusError
	}
}

// ErrorResponse maps err to its HTTP status code and response envelope.
// The mapping reads the kind attached to the error, never its Go type name;
// errors without a kind surface as ERROR/500 with the message preserved.
func ErrorResponse(err error) (int, Response) {
	kind := internal_errors.KindOf(err)
	return kind.HTTPStatus(), Response{
		Status:  statusForKind(kind),
		Message: err.Error(),
		Data:    nil,
	}
}
