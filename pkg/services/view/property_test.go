package view

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var (
	providers  = []string{"aws", "azure", "gcp"}
	statuses   = []domain.RequestStatus{domain.RequestPending, domain.RequestApproved, domain.RequestRejected}
	priorities = []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}
	words      = []string{"database", "storage", "cluster", "network", "gpu"}
)

func genRequest() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, len(providers)-1),
		gen.IntRange(0, len(statuses)-1),
		gen.IntRange(0, len(priorities)-1),
		gen.IntRange(0, len(words)-1),
		gen.Float64Range(0, 5000),
		gen.Int64Range(0, 365*24*3600),
	).Map(func(v []interface{}) domain.Request {
		return domain.Request{
			ID:            "REQ",
			Title:         "Request " + words[v[3].(int)],
			Description:   "Needs more " + words[(v[3].(int)+1)%len(words)],
			Provider:      providers[v[0].(int)],
			Status:        statuses[v[1].(int)],
			Priority:      priorities[v[2].(int)],
			EstimatedCost: v[4].(float64),
			CreatedAt:     time.Unix(v[5].(int64), 0).UTC(),
		}
	})
}

func genFilter() gopter.Gen {
	pick := func(vals ...string) gopter.Gen {
		return gen.IntRange(0, len(vals)-1).Map(func(i int) string { return vals[i] })
	}
	return gopter.CombineGens(
		pick("", "DATA", "storage", "gpu"),
		pick(All, "aws", "azure", "gcp"),
		pick(All, "aws", "gcp"),
		pick(All, "pending", "approved", "rejected"),
		pick(All, "low", "medium", "high"),
	).Map(func(v []interface{}) RequestFilter {
		return RequestFilter{
			Query:          v[0].(string),
			Provider:       v[1].(string),
			GlobalProvider: v[2].(string),
			Status:         v[3].(string),
			Priority:       v[4].(string),
		}
	})
}

func costs(reqs []domain.Request) []float64 {
	out := make([]float64, len(reqs))
	for i, r := range reqs {
		out[i] = r.EstimatedCost
	}
	return out
}

func TestSelectRequests_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	requests := gen.SliceOf(genRequest())

	properties.Property("an all-pass filter is the identity", prop.ForAll(
		func(reqs []domain.Request) bool {
			got := SelectRequests(reqs, RequestFilter{Provider: All, GlobalProvider: All, Status: All, Priority: All})
			return len(got) == len(reqs) && (len(reqs) == 0 || reflect.DeepEqual(got, reqs))
		},
		requests,
	))

	properties.Property("the result is exactly the requests every predicate accepts", prop.ForAll(
		func(reqs []domain.Request, f RequestFilter) bool {
			got := SelectRequests(reqs, f)
			var want []domain.Request
			for _, r := range reqs {
				ok := len(SelectRequests([]domain.Request{r}, RequestFilter{Query: f.Query})) == 1 &&
					len(SelectRequests([]domain.Request{r}, RequestFilter{Provider: f.Provider})) == 1 &&
					len(SelectRequests([]domain.Request{r}, RequestFilter{GlobalProvider: f.GlobalProvider})) == 1 &&
					len(SelectRequests([]domain.Request{r}, RequestFilter{Status: f.Status})) == 1 &&
					len(SelectRequests([]domain.Request{r}, RequestFilter{Priority: f.Priority})) == 1
				if ok {
					want = append(want, r)
				}
			}
			return len(got) == len(want) && (len(want) == 0 || reflect.DeepEqual(got, want))
		},
		requests,
		genFilter(),
	))

	properties.Property("cost-high reversed orders costs like cost-low", prop.ForAll(
		func(reqs []domain.Request) bool {
			high := costs(SelectRequests(reqs, RequestFilter{Sort: SortCostHigh}))
			low := costs(SelectRequests(reqs, RequestFilter{Sort: SortCostLow}))
			slices.Reverse(high)
			return slices.Equal(high, low)
		},
		requests,
	))

	properties.Property("newest is ordered by creation time", prop.ForAll(
		func(reqs []domain.Request) bool {
			got := SelectRequests(reqs, RequestFilter{Sort: SortNewest})
			for i := 1; i < len(got); i++ {
				if got[i].CreatedAt.After(got[i-1].CreatedAt) {
					return false
				}
			}
			return true
		},
		requests,
	))

	properties.TestingRun(t)
}
