package permission

import (
	"testing"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	employee := []domain.Capability{domain.CapViewResources, domain.CapCreateRequests}
	admin := []domain.Capability{domain.CapFullAccess, domain.CapManageUsers, domain.CapConfigurePolicies}

	tests := []struct {
		name  string
		perms []domain.Capability
		tags  []domain.Capability
		want  bool
	}{
		{"single held tag", employee, []domain.Capability{domain.CapCreateRequests}, true},
		{"single missing tag", employee, []domain.Capability{domain.CapApproveRequests}, false},
		{"any of several", employee, []domain.Capability{domain.CapApproveRequests, domain.CapViewResources}, true},
		{"none of several", employee, []domain.Capability{domain.CapManageTeam, domain.CapManageUsers}, false},
		{"no tags", employee, nil, false},
		{"no permissions", nil, []domain.Capability{domain.CapViewResources}, false},
		{"full access implies nothing", admin, []domain.Capability{domain.CapViewResources}, false},
		{"full access itself", admin, []domain.Capability{domain.CapFullAccess}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCapability(tt.perms, tt.tags...))
		})
	}
}

func TestRoleHas(t *testing.T) {
	manager := domain.Role{
		ID:          domain.RoleManager,
		Permissions: []domain.Capability{domain.CapViewResources, domain.CapApproveRequests, domain.CapManageTeam},
	}

	assert.True(t, RoleHas(manager, domain.CapApproveRequests))
	assert.False(t, RoleHas(manager, domain.CapCreateRequests))

	assert.NoError(t, Require(manager, domain.CapManageTeam))
	assert.ErrorIs(t, Require(manager, domain.CapManageUsers, domain.CapFullAccess), ErrDenied)
}

func genCapabilities() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(domain.Capabilities)-1)).
		Map(func(idx []int) []domain.Capability {
			caps := make([]domain.Capability, len(idx))
			for i, n := range idx {
				caps[i] = domain.Capabilities[n]
			}
			return caps
		})
}

func TestHasCapability_MembershipLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("true iff some tag is a member", prop.ForAll(
		func(perms, tags []domain.Capability) bool {
			want := false
			for _, tag := range tags {
				for _, p := range perms {
					if p == tag {
						want = true
					}
				}
			}
			return HasCapability(perms, tags...) == want
		},
		genCapabilities(),
		genCapabilities(),
	))

	properties.Property("order of tags does not matter", prop.ForAll(
		func(perms, tags []domain.Capability) bool {
			reversed := make([]domain.Capability, len(tags))
			for i, tag := range tags {
				reversed[len(tags)-1-i] = tag
			}
			return HasCapability(perms, tags...) == HasCapability(perms, reversed...)
		},
		genCapabilities(),
		genCapabilities(),
	))

	properties.TestingRun(t)
}
