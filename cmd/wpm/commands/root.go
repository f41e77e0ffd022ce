// Package commands implements the CLI commands for wpm.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wpm/internal/build"
	"go.trai.ch/wpm/internal/core/domain"
	"go.trai.ch/wpm/internal/core/ports"
)

// CLI represents the command line interface for wpm.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Locate(ctx context.Context, commandName string) (domain.Command, error)
	Suggest(ctx context.Context, commandName string) (*domain.PackageInfo, error)
	CacheKey(ctx context.Context, cmd domain.Command) (string, error)
	ConfigGet(ctx context.Context, key string) (string, error)
	ConfigSet(ctx context.Context, key, value string) error
}

// New creates a new CLI instance with the given app. The logger may be nil in
// tests; verbosity flags are then ignored.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wpm",
		Short:         "A package manager for WebAssembly modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logger == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.logger.SetVerbose(verbose)
		c.logger.SetJSON(jsonMode)
	}

	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newConfigCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
