package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/storefront/internal/buildinfo"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// RootOptions holds the global flags for all commands.
type RootOptions struct {
	flags *config.Flags
}

// NewRootCommand creates the root command for the storefront CLI. Without a
// subcommand it starts the shell.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront session and cart shell",
		Long: `Drive a storefront page from the terminal.

Users, sessions and carts live in a local SQLite store. The shell builds the
page in memory and turns each command into the click or form submit a
shopper would make.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.Shell(ctx) })
		},
	}
	opts.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newShellCommand(opts))
	cmd.AddCommand(newUsersCommand(opts))
	cmd.AddCommand(newCartsCommand(opts))
	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// withApp loads the configuration, opens the App and runs fn on it.
func withApp(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, a *App) error) error {
	cfg, err := config.LoadConfig(opts.flags)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := NewApp(ctx, cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}

func newShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.Shell(ctx) })
		},
	}
}

func newUsersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.ListUsers(ctx) })
		},
	}
}

func newCartsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "carts",
		Short: "List stored carts with item count and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.ListCarts(ctx) })
		},
	}
}

func newRenderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Boot the page and print the rendered account label, badge and cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.Render(ctx) })
		},
	}
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Dump the local store to a JSON file",
		Args:  exactFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.Export(ctx, args[0]) })
		},
	}
}

func newImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the local store with a JSON dump",
		Args:  exactFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *App) error { return a.Import(ctx, args[0]) })
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func exactFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s expects exactly one file argument", cmd.Name())
	}
	return nil
}
