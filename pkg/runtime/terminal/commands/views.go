package commands

import (
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/spf13/cobra"
)

func NewOverviewCmd(env EnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			report, err := e.compose(page.Request{Tab: page.TabOverview})
			if err != nil {
				return err
			}
			return e.Reporter.Handle(report)
		},
	}
}

type RequestsCmd struct {
	env            EnvFunc
	approvals      bool
	query          string
	status         string
	priority       string
	sort           string
	filterProvider string
}

func NewRequestsCmd(env EnvFunc) *cobra.Command {
	rc := &RequestsCmd{env: env}
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List resource requests",
		RunE:  rc.run,
	}

	cmd.Flags().BoolVar(&rc.approvals, "approvals", false, "Show the approval queue (pending by default)")
	cmd.Flags().StringVarP(&rc.query, "query", "q", "", "Search title or description")
	cmd.Flags().StringVar(&rc.status, "status", "", "Status filter: all, pending, approved, rejected")
	cmd.Flags().StringVar(&rc.priority, "priority", "", "Priority filter: all, low, medium, high")
	cmd.Flags().StringVar(&rc.sort, "sort", "", "Sort order: newest, oldest, cost-high, cost-low")
	cmd.Flags().StringVar(&rc.filterProvider, "filter-provider", "", "Provider filter applied on top of --provider")

	return cmd
}

func (rc *RequestsCmd) run(cmd *cobra.Command, args []string) error {
	tab := page.TabRequests
	if rc.approvals {
		tab = page.TabApprovals
	}

	e := rc.env()
	report, err := e.compose(page.Request{
		Tab:            tab,
		Query:          rc.query,
		Status:         rc.status,
		Priority:       rc.priority,
		Sort:           view.SortKey(rc.sort),
		FilterProvider: rc.filterProvider,
	})
	if err != nil {
		return err
	}
	return e.Reporter.Handle(report)
}

func NewApprovedCmd(env EnvFunc) *cobra.Command {
	var query, sort, filterProvider string
	cmd := &cobra.Command{
		Use:   "approved",
		Short: "List approved services",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			report, err := e.compose(page.Request{
				Tab:            page.TabApprovedServices,
				Query:          query,
				Sort:           view.SortKey(sort),
				FilterProvider: filterProvider,
			})
			if err != nil {
				return err
			}
			return e.Reporter.Handle(report)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title or description")
	cmd.Flags().StringVar(&sort, "sort", "", "Sort order: newest, oldest, cost-high, cost-low")
	cmd.Flags().StringVar(&filterProvider, "filter-provider", "", "Provider filter applied on top of --provider")
	return cmd
}

func NewInfrastructureCmd(env EnvFunc) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "infrastructure",
		Short: "Show resource categories and spend by provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			report, err := e.compose(page.Request{Tab: page.TabInfrastructure, Category: category})
			if err != nil {
				return err
			}
			return e.Reporter.Handle(report)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list categories of this provider")
	return cmd
}
