package adapters

import (
	"slices"

	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

func MapProviderDomainToApi(p domain.CloudProvider) api.Provider {
	return api.Provider{
		ID:          p.ID,
		Name:        p.Name,
		Status:      string(p.Status),
		Resources:   p.Resources,
		MonthlyCost: p.MonthlyCost,
		Services:    slices.Clone(p.Services),
	}
}

func MapProvidersDomainToApi(providers []domain.CloudProvider) []api.Provider {
	out := make([]api.Provider, 0, len(providers))
	for _, p := range providers {
		out = append(out, MapProviderDomainToApi(p))
	}
	return out
}

func MapCapabilitiesToStrings(caps []domain.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}

func MapRoleDomainToApi(r domain.Role) api.Role {
	return api.Role{
		ID:           string(r.ID),
		Name:         r.Name,
		Description:  r.Description,
		Permissions:  MapCapabilitiesToStrings(r.Permissions),
		Features:     slices.Clone(r.Features),
		DemoUsername: r.Credentials.Username,
		DemoPassword: r.Credentials.Password,
	}
}

func MapRequestDomainToApi(r domain.Request) api.Request {
	return api.Request{
		ID:            r.ID,
		Type:          r.Type,
		Title:         r.Title,
		Description:   r.Description,
		Requester:     r.Requester,
		Status:        string(r.Status),
		Priority:      string(r.Priority),
		EstimatedCost: r.EstimatedCost,
		Provider:      r.Provider,
		CreatedAt:     r.CreatedAt,
		Approver:      r.Approver,
	}
}

func MapRequestsDomainToApi(requests []domain.Request) []api.Request {
	out := make([]api.Request, 0, len(requests))
	for _, r := range requests {
		out = append(out, MapRequestDomainToApi(r))
	}
	return out
}

func MapSessionDomainToApi(s domain.Session) api.Session {
	return api.Session{
		Role:        string(s.Role.ID),
		RoleName:    s.Role.Name,
		Username:    s.Username,
		Permissions: MapCapabilitiesToStrings(s.Role.Permissions),
		CreatedAt:   s.CreatedAt,
	}
}
