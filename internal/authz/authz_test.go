package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		identity domain.Identity
		owner    domain.UserId
		allowed  bool
	}{
		{"owner", domain.Identity{UserId: 7, Role: domain.RoleUser}, 7, true},
		{"admin on foreign resource", domain.Identity{UserId: 1, Role: domain.RoleAdmin}, 7, true},
		{"admin on own resource", domain.Identity{UserId: 7, Role: domain.RoleAdmin}, 7, true},
		{"other user", domain.Identity{UserId: 8, Role: domain.RoleUser}, 7, false},
		{"anonymous", domain.Identity{}, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, internal_errors.IsKind(err, internal_errors.Forbidden))
			}
		})
	}
}
