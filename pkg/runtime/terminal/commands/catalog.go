package commands

import (
	"github.com/spf13/cobra"
)

func NewRolesCmd(env EnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the demo roles and their permissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			return e.Reporter.Handle(rolesReport(e.Store.Roles()))
		},
	}
}

func NewProvidersCmd(env EnvFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the connected cloud providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			return e.Reporter.Handle(providersReport(e.Store.Providers()))
		},
	}
}

func NewNavigationCmd(env EnvFunc) *cobra.Command {
	var active string
	cmd := &cobra.Command{
		Use:   "navigation",
		Short: "Show the sidebar tabs available to the role",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			return e.Reporter.Handle(navigationReport(e.Session, e.Composer.Navigation(e.Session, active)))
		},
	}
	cmd.Flags().StringVar(&active, "tab", "overview", "Tab to mark as active")
	return cmd
}
