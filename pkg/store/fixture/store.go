package fixture

import (
	"slices"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// Store gives read access to a validated dataset. Returned slices are copies;
// the records inside them share no mutable state with the store except maps
// and nested slices, which callers must treat as read-only.
type Store struct {
	ds        *domain.Dataset
	providers map[string]int
	roles     map[domain.RoleID]int
	requests  map[string]int
}

func newStore(ds *domain.Dataset) *Store {
	s := &Store{
		ds:        ds,
		providers: make(map[string]int, len(ds.Providers)),
		roles:     make(map[domain.RoleID]int, len(ds.Roles)),
		requests:  make(map[string]int, len(ds.Requests)),
	}
	for i, p := range ds.Providers {
		s.providers[p.ID] = i
	}
	for i, r := range ds.Roles {
		s.roles[r.ID] = i
	}
	for i, r := range ds.Requests {
		s.requests[r.ID] = i
	}
	return s
}

// Dataset returns the underlying dataset. It must not be modified.
func (s *Store) Dataset() *domain.Dataset {
	return s.ds
}

func (s *Store) Providers() []domain.CloudProvider {
	return slices.Clone(s.ds.Providers)
}

func (s *Store) Provider(id string) (domain.CloudProvider, bool) {
	i, ok := s.providers[id]
	if !ok {
		return domain.CloudProvider{}, false
	}
	return s.ds.Providers[i], true
}

func (s *Store) Roles() []domain.Role {
	return slices.Clone(s.ds.Roles)
}

func (s *Store) Role(id domain.RoleID) (domain.Role, bool) {
	i, ok := s.roles[id]
	if !ok {
		return domain.Role{}, false
	}
	return s.ds.Roles[i], true
}

func (s *Store) Requests() []domain.Request {
	return slices.Clone(s.ds.Requests)
}

func (s *Store) Request(id string) (domain.Request, bool) {
	i, ok := s.requests[id]
	if !ok {
		return domain.Request{}, false
	}
	return s.ds.Requests[i], true
}

func (s *Store) Costs() domain.CostSnapshot {
	return s.ds.Costs
}

func (s *Store) Workflow() domain.ApprovalWorkflow {
	return s.ds.Workflow
}

// Categories flattens the per-provider resource categories in provider order.
func (s *Store) Categories() []domain.ResourceCategory {
	var out []domain.ResourceCategory
	for _, p := range s.ds.Providers {
		out = append(out, s.ds.Categories[p.ID]...)
	}
	return out
}
