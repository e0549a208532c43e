package fixture

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// BreakdownTolerance is the rounding slack allowed between the cost total and
// the sum of its per-provider breakdown.
const BreakdownTolerance = 0.01

var ErrInvalidDataset = errors.New("invalid dataset")

// Validate reports every invariant the dataset breaks.
func Validate(ds *domain.Dataset) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	providers := make(map[string]struct{}, len(ds.Providers))
	for _, p := range ds.Providers {
		if p.ID == "" {
			add("provider %q has an empty id", p.Name)
			continue
		}
		if _, dup := providers[p.ID]; dup {
			add("duplicate provider id %q", p.ID)
		}
		providers[p.ID] = struct{}{}
		if !p.Status.Valid() {
			add("provider %s: invalid status %q", p.ID, p.Status)
		}
	}
	knownProvider := func(id string) bool {
		_, ok := providers[id]
		return ok
	}

	roles := make(map[domain.RoleID]struct{}, len(ds.Roles))
	for _, r := range ds.Roles {
		if !r.ID.Valid() {
			add("unknown role id %q", r.ID)
		}
		if _, dup := roles[r.ID]; dup {
			add("duplicate role id %q", r.ID)
		}
		roles[r.ID] = struct{}{}
		for _, c := range r.Permissions {
			if !c.Valid() {
				add("role %s: unknown capability %q", r.ID, c)
			}
		}
	}
	for _, id := range domain.RoleIDs {
		if _, ok := roles[id]; !ok {
			add("missing role %q", id)
		}
	}

	requests := make(map[string]struct{}, len(ds.Requests))
	for _, r := range ds.Requests {
		if _, dup := requests[r.ID]; dup {
			add("duplicate request id %q", r.ID)
		}
		requests[r.ID] = struct{}{}
		if !r.Status.Valid() {
			add("request %s: invalid status %q", r.ID, r.Status)
		}
		if !r.Priority.Valid() {
			add("request %s: invalid priority %q", r.ID, r.Priority)
		}
		if !knownProvider(r.Provider) {
			add("request %s: unknown provider %q", r.ID, r.Provider)
		}
		if r.EstimatedCost < 0 {
			add("request %s: negative estimated cost", r.ID)
		}
	}

	month := ds.Costs.CurrentMonth
	for provider := range month.Breakdown {
		if !knownProvider(provider) {
			add("cost breakdown: unknown provider %q", provider)
		}
	}
	if sum := month.BreakdownSum(); math.Abs(sum-month.Total) > BreakdownTolerance {
		add("cost breakdown sums to %.2f, total is %.2f", sum, month.Total)
	}
	for i, a := range ds.Costs.Alerts {
		if !a.Severity.Valid() {
			add("cost alert %d: invalid severity %q", i, a.Severity)
		}
		if !knownProvider(a.Provider) {
			add("cost alert %d: unknown provider %q", i, a.Provider)
		}
	}

	for provider := range ds.Categories {
		if !knownProvider(provider) {
			add("resource categories: unknown provider %q", provider)
		}
	}

	if err := validateSteps(ds.Workflow.Steps); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(errs...))
}

// validateSteps checks that steps read completed*, at most one current, then pending*.
func validateSteps(steps []domain.WorkflowStep) error {
	seenCurrent, seenPending := false, false
	for i, s := range steps {
		if i > 0 && s.Number <= steps[i-1].Number {
			return fmt.Errorf("workflow step %q: numbers must increase", s.Name)
		}
		switch s.Status {
		case domain.StepCompleted:
			if seenCurrent || seenPending {
				return fmt.Errorf("workflow step %d: completed after an unfinished step", s.Number)
			}
		case domain.StepCurrent:
			if seenCurrent {
				return fmt.Errorf("workflow step %d: more than one current step", s.Number)
			}
			if seenPending {
				return fmt.Errorf("workflow step %d: current after a pending step", s.Number)
			}
			seenCurrent = true
		case domain.StepPending:
			seenPending = true
		default:
			return fmt.Errorf("workflow step %d: invalid status %q", s.Number, s.Status)
		}
	}
	return nil
}
