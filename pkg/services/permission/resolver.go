package permission

import (
	"errors"
	"fmt"
	"slices"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

var ErrDenied = errors.New("permission denied")

// HasCapability reports whether any of tags is held in perms. Tags are matched
// by exact membership only; full_access grants nothing beyond itself.
func HasCapability(perms []domain.Capability, tags ...domain.Capability) bool {
	for _, tag := range tags {
		if slices.Contains(perms, tag) {
			return true
		}
	}
	return false
}

func RoleHas(role domain.Role, tags ...domain.Capability) bool {
	return HasCapability(role.Permissions, tags...)
}

// Require returns ErrDenied unless role holds one of tags.
func Require(role domain.Role, tags ...domain.Capability) error {
	if RoleHas(role, tags...) {
		return nil
	}
	return fmt.Errorf("%w: %s needs one of %v", ErrDenied, role.ID, tags)
}
