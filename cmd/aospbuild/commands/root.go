// Package commands implements the CLI commands for the aospbuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/aospbuild/internal/app"
	"go.trai.ch/aospbuild/internal/build"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for aospbuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "aospbuild",
		Short:         "Fetch, configure and build an AOSP tree",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("config", "", "Configuration file (default \"aospbuild.yaml\")")
	rootCmd.PersistentFlags().StringP("build-dir", "d", "", "Build directory (default \"$HOME/aosp\")")

	flags := rootCmd.Flags()
	flags.StringP("branch", "b", domain.DefaultBranch, "Manifest branch to check out")
	flags.StringP("target", "t", domain.DefaultTarget, "Lunch target to build")
	flags.IntP("jobs", "j", domain.DefaultSyncJobs, "Parallel jobs for repo sync")
	flags.BoolP("rbe", "r", false, "Enable remote build execution")
	flags.BoolP("clean", "c", false, "Remove the build directory before building")
	flags.BoolP("list-targets", "l", false, "List available lunch targets and exit")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return zerr.Wrap(domain.ErrInvalidArguments, fmt.Sprintf("%v; run 'aospbuild --help' for usage", err))
	})

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Run(cmd.Context(), runOptions(cmd))
	}

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// runOptions turns the flags the user actually set into configuration overrides,
// so unset flags never mask the config file or the environment.
func runOptions(cmd *cobra.Command) app.RunOptions {
	var opts app.RunOptions
	opts.ConfigFile, _ = cmd.Flags().GetString("config")

	cmd.Flags().Visit(func(f *pflag.Flag) {
		if o := override(cmd.Flags(), f.Name); o != nil {
			opts.Overrides = append(opts.Overrides, o)
		}
	})
	return opts
}

func override(flags *pflag.FlagSet, name string) domain.ConfigOverride {
	switch name {
	case "branch":
		v, _ := flags.GetString(name)
		return domain.WithBranch(v)
	case "target":
		v, _ := flags.GetString(name)
		return domain.WithTarget(v)
	case "jobs":
		v, _ := flags.GetInt(name)
		return domain.WithSyncJobs(v)
	case "build-dir":
		v, _ := flags.GetString(name)
		return domain.WithBuildDir(v)
	case "rbe":
		v, _ := flags.GetBool(name)
		return domain.WithRemoteExecution(v)
	case "clean":
		v, _ := flags.GetBool(name)
		return domain.WithClean(v)
	case "list-targets":
		v, _ := flags.GetBool(name)
		return domain.WithListTargets(v)
	default:
		return nil
	}
}
