package view

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

// All disables a provider, status or priority predicate.
const All = "all"

type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortCostHigh SortKey = "cost-high"
	SortCostLow  SortKey = "cost-low"
)

var ErrInvalidFilter = errors.New("invalid filter")

var validate = validator.New()

// RequestFilter narrows and orders a request list. Zero values pass everything
// and keep the input order.
type RequestFilter struct {
	Query          string  `validate:"max=256"`
	Provider       string  `validate:"max=64"`
	GlobalProvider string  `validate:"max=64"`
	Status         string  `validate:"omitempty,oneof=all pending approved rejected"`
	Priority       string  `validate:"omitempty,oneof=all low medium high"`
	Sort           SortKey `validate:"omitempty,oneof=newest oldest cost-high cost-low"`
}

func (f RequestFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return nil
}

func (f RequestFilter) matches(r domain.Request, query string) bool {
	if query != "" &&
		!strings.Contains(strings.ToLower(r.Title), query) &&
		!strings.Contains(strings.ToLower(r.Description), query) {
		return false
	}
	return passes(f.Provider, r.Provider) &&
		passes(f.GlobalProvider, r.Provider) &&
		passes(f.Status, string(r.Status)) &&
		passes(f.Priority, string(r.Priority))
}

func passes(want, got string) bool {
	return want == "" || want == All || want == got
}

// SelectRequests returns the requests matching every predicate of f, ordered by
// f.Sort. The input slice is left untouched.
func SelectRequests(all []domain.Request, f RequestFilter) []domain.Request {
	query := strings.ToLower(f.Query)

	out := make([]domain.Request, 0, len(all))
	for _, r := range all {
		if f.matches(r, query) {
			out = append(out, r)
		}
	}

	if less := comparator(f.Sort); less != nil {
		slices.SortStableFunc(out, less)
	}
	return out
}

func comparator(key SortKey) func(a, b domain.Request) int {
	switch key {
	case SortNewest:
		return func(a, b domain.Request) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortOldest:
		return func(a, b domain.Request) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortCostHigh:
		return func(a, b domain.Request) int { return cmp.Compare(b.EstimatedCost, a.EstimatedCost) }
	case SortCostLow:
		return func(a, b domain.Request) int { return cmp.Compare(a.EstimatedCost, b.EstimatedCost) }
	}
	return nil
}

func RequestStats(reqs []domain.Request) domain.RequestStats {
	stats := domain.RequestStats{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Status {
		case domain.RequestPending:
			stats.Pending++
		case domain.RequestApproved:
			stats.Approved++
		case domain.RequestRejected:
			stats.Rejected++
		}
	}
	return stats
}
