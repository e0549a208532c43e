package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/cloud-portal/pkg/config"
	"github.com/de-tools/cloud-portal/pkg/runtime/terminal/commands"
	"github.com/de-tools/cloud-portal/pkg/runtime/terminal/export"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/store/session/memory"
	"github.com/spf13/cobra"
)

const (
	FormatTable = "table"
	FormatText  = "text"
)

// CLI represents the command-line interface
type CLI struct {
	opts    Options
	env     *commands.Env
	rootCmd *cobra.Command

	role     string
	provider string
	fixtures string
	accounts string
	format   string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Now fixes the clock used for month-relative figures.
	Now func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with args instead of os.Args.
func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "portal",
		Short:             "Browse the cloud portal dashboard from the terminal",
		SilenceUsage:      true,
		PersistentPreRunE: cli.prepare,
	}
	cmd.SetOut(cli.opts.Output)

	flags := cmd.PersistentFlags()
	flags.StringVar(&cli.role, "role", "user", "Demo role to sign in as: user, manager, admin")
	flags.StringVar(&cli.provider, "provider", "all", "Global provider selection")
	flags.StringVar(&cli.fixtures, "fixtures", "", "Path to a dataset file (default is the embedded dataset)")
	flags.StringVar(&cli.accounts, "accounts", "", "Path to an ini file overriding demo credentials")
	flags.StringVar(&cli.format, "format", FormatTable, "Output format: table or text")

	env := func() *commands.Env { return cli.env }
	cmd.AddCommand(
		commands.NewRolesCmd(env),
		commands.NewProvidersCmd(env),
		commands.NewNavigationCmd(env),
		commands.NewOverviewCmd(env),
		commands.NewRequestsCmd(env),
		commands.NewApprovedCmd(env),
		commands.NewInfrastructureCmd(env),
	)

	return cmd
}

func (cli *CLI) prepare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var reporter commands.Reporter
	switch cli.format {
	case FormatTable:
		reporter = export.NewReporter(cli.opts.Output)
	case FormatText:
		reporter = NewReporter(cli.opts.Output)
	default:
		return fmt.Errorf("unsupported format %q, expected %s or %s", cli.format, FormatTable, FormatText)
	}

	store, err := config.OpenFixtures(ctx, config.FixturesConfig{
		Path:         cli.fixtures,
		AccountsPath: cli.accounts,
	})
	if err != nil {
		return err
	}

	provider, err := page.NormalizeProvider(store.Dataset(), cli.provider)
	if err != nil {
		return err
	}

	manager := session.NewManager(store, memory.NewStore(0), session.Options{})
	sess, err := manager.Login(ctx, session.LoginRequest{Role: cli.role})
	if err != nil {
		return fmt.Errorf("failed to sign in as %q: %w", cli.role, err)
	}

	var opts []page.Option
	if cli.opts.Now != nil {
		opts = append(opts, page.WithClock(cli.opts.Now))
	}

	cli.env = &commands.Env{
		Store:    store,
		Composer: page.NewComposer(store.Dataset(), opts...),
		Session:  sess,
		Provider: provider,
		Reporter: reporter,
	}
	return nil
}
