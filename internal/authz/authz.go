// Package authz holds the single ownership check invoked before every
// mutation of an owned entity. Ownership resolution stays with the caller;
// the guard only decides.
package authz

import (
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

// Authorize allows iff the caller owns the resource or carries the ADMIN
// role. The admin override is unconditional; no finer-grained levels exist.
func Authorize(identity domain.Identity, ownerId domain.UserId) error {
	if identity.UserId == ownerId || identity.IsAdmin() {
		return nil
	}
	return internal_errors.New(internal_errors.Forbidden, "You don't have permission for this resource")
}
